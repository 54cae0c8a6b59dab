package dto

import "github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"

// UpdateProfileRequest carries a partial profile edit; nil fields are left
// untouched.
//
// swagger:model
type UpdateProfileRequest struct {
	Bio          *string              `json:"bio,omitempty"`
	ProfileImage *string              `json:"profile_image,omitempty"`
	Style        *models.ProfileStyle `json:"style,omitempty"`
	Following    *[]string            `json:"following,omitempty"`
}
