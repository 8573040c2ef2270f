package dto

// UpdateProfileRequest is a partial update: nil fields are left
// untouched, empty strings clear the column.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
}
