package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/niklaus0x/viral-blog/internal/dto"
	"github.com/niklaus0x/viral-blog/internal/validation"
)

func (h *Handler) categoriesGet(c *gin.Context) {
	c.JSON(http.StatusOK, validation.Categories())
}

func (h *Handler) postsGetAll(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	posts, err := h.services.Post.FindAll(c.Request.Context(), category)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), h.getUserFromRequest(c), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsGetByAuthor(c *gin.Context) {
	userIDString := strings.TrimSpace(c.Param("userID"))
	userID, err := uuid.Parse(userIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidUserID.Error()))
		return
	}

	posts, err := h.services.Post.FindAuthorPosts(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), user, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsEdit(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.EditPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), user.ID, postID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *updatedPost)
}

// postsDelete fires the destructive call only with ?confirm=true; the
// first, unconfirmed request is rejected and the post stays put.
func (h *Handler) postsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	confirmed := c.Query("confirm") == "true"

	if err := h.services.Post.Delete(c.Request.Context(), user.ID, postID, confirmed); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
