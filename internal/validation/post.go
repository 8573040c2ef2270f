package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Error marks a user-correctable input failure. Handlers map it to a
// 400 with the message as-is.
type Error string

func (e Error) Error() string { return string(e) }

var categories = map[string]struct{}{
	"Technology":  {},
	"Design":      {},
	"Development": {},
	"Business":    {},
	"Lifestyle":   {},
	"Other":       {},
}

// Categories returns the allowed post categories in display order.
func Categories() []string {
	return []string{"Technology", "Design", "Development", "Business", "Lifestyle", "Other"}
}

type PostInput struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	ImageURL string
}

// ValidatePost trims the input and checks the rules in order: title,
// excerpt, content, category, image URL. Only the first violation is
// reported.
func ValidatePost(in PostInput) (*PostInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Excerpt = strings.TrimSpace(in.Excerpt)
	in.Content = strings.TrimSpace(in.Content)
	in.Category = strings.TrimSpace(in.Category)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	// Limits count characters, not bytes.
	titleLen := utf8.RuneCountInString(in.Title)
	if titleLen < 5 {
		return nil, Error("Title must be at least 5 characters")
	}
	if titleLen > 200 {
		return nil, Error("Title must be less than 200 characters")
	}
	excerptLen := utf8.RuneCountInString(in.Excerpt)
	if excerptLen < 10 {
		return nil, Error("Excerpt must be at least 10 characters")
	}
	if excerptLen > 500 {
		return nil, Error("Excerpt must be less than 500 characters")
	}
	contentLen := utf8.RuneCountInString(in.Content)
	if contentLen < 50 {
		return nil, Error("Content must be at least 50 characters")
	}
	if contentLen > 50000 {
		return nil, Error("Content is too long")
	}
	if _, ok := categories[in.Category]; !ok {
		return nil, Error("Please select a category")
	}
	if in.ImageURL != "" {
		u, err := url.Parse(in.ImageURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return nil, Error("Please enter a valid URL")
		}
	}

	return &in, nil
}

// CommentContent trims the content and rejects empty comments.
func CommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", Error("Comment cannot be empty")
	}
	return content, nil
}
