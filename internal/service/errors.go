package service

import "errors"

var (
	ErrInternal           = errors.New("internal server error")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrForbidden          = errors.New("you don't have permission to do that")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrDeleteNotConfirmed = errors.New("post deletion requires confirmation")

	ErrFileTooLarge    = errors.New("File too large. Maximum size is 5MB")
	ErrInvalidFileType = errors.New("Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed")
)
