package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.Next()
		return
	}

	accessToken := strings.TrimPrefix(header, "Bearer ")
	if accessToken == "" {
		c.Next()
		return
	}

	user, err := h.services.Auth.UserFromAccessToken(c.Request.Context(), accessToken)
	if err != nil {
		c.Next()
		return
	}

	c.Set("user", *user)

	c.Next()
}
