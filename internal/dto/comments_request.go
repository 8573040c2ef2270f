package dto

type CreateCommentRequest struct {
	PostID  int64  `json:"post_id" binding:"required"`
	Content string `json:"content"`
}

type EditCommentRequest struct {
	Content string `json:"content"`
}
