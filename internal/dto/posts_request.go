package dto

// CreatePostRequest carries raw form input. Bounds, the category enum
// and the image URL format are checked by the validation package, not
// by binding tags, because the rules are ordered and the first failing
// one wins.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

type EditPostRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}
