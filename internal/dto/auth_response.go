package dto

import "github.com/niklaus0x/viral-blog/internal/model"

type AuthResponse struct {
	AccessToken string     `json:"access_token"`
	User        model.User `json:"user"`
}
