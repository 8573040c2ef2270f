package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/niklaus0x/viral-blog/internal/dto"
)

func (h *Handler) commentsGet(c *gin.Context) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	comments, err := h.services.Comment.FindPostComments(c.Request.Context(), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// commentsCreate responds with the re-fetched comment list for the
// post rather than the single created row.
func (h *Handler) commentsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	comments, err := h.services.Comment.Create(c.Request.Context(), user, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comments)
}

func (h *Handler) commentsEdit(c *gin.Context) {
	user := h.getUserFromRequest(c)

	commentIDString := strings.TrimSpace(c.Param("commentID"))
	commentID, err := strconv.ParseInt(commentIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	var input dto.EditCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedComment, err := h.services.Comment.Update(c.Request.Context(), user.ID, commentID, input.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *updatedComment)
}

func (h *Handler) commentsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	commentIDString := strings.TrimSpace(c.Param("commentID"))
	commentID, err := strconv.ParseInt(commentIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), user.ID, commentID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
