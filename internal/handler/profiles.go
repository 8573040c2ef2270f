package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/niklaus0x/viral-blog/internal/dto"
)

// profilesGet returns the public profile together with the user's
// posts, newest first.
func (h *Handler) profilesGet(c *gin.Context) {
	userIDString := strings.TrimSpace(c.Param("userID"))
	userID, err := uuid.Parse(userIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidUserID.Error()))
		return
	}

	profile, err := h.services.Profile.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	posts, err := h.services.Post.FindAuthorPosts(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetProfile{
		Profile: *profile,
		Posts:   posts,
	})
}

func (h *Handler) profilesUpdateMe(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedProfile, err := h.services.Profile.Update(c.Request.Context(), user.ID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *updatedProfile)
}
