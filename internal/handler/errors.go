package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/niklaus0x/viral-blog/internal/dto"
	"github.com/niklaus0x/viral-blog/internal/service"
	"github.com/niklaus0x/viral-blog/internal/validation"
)

var (
	errNotAuthorized  = errors.New("user is not authorized")
	errInvalidPostID  = errors.New("invalid post ID")
	errInvalidID      = errors.New("invalid ID")
	errInvalidUserID  = errors.New("invalid user ID")
	errNoFileProvided = errors.New("No file provided")
)

// statusFromError maps the closed service error set to HTTP statuses.
// Anything unrecognized is treated as internal.
func statusFromError(err error) int {
	var validationErr validation.Error
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, service.ErrDeleteNotConfirmed),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrFileTooLarge),
		errors.Is(err, service.ErrInvalidFileType):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
}
