package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/niklaus0x/viral-blog/internal/dto"
)

func (h *Handler) uploadImage(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errNoFileProvided.Error()))
		return
	}
	defer file.Close()

	url, err := h.services.Upload.UploadImage(c.Request.Context(), file, fileHeader)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}
