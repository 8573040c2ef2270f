package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/niklaus0x/viral-blog/internal/dto"
)

func (h *Handler) authRegister(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	resp, err := h.services.Auth.Register(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *resp)
}

func (h *Handler) authLogin(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	resp, err := h.services.Auth.Login(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *resp)
}
