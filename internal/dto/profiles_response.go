package dto

import "github.com/niklaus0x/viral-blog/internal/model"

type GetProfile struct {
	Profile model.Profile     `json:"profile"`
	Posts   []*model.FullPost `json:"posts"`
}
