package dto

import "github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"

// swagger:model
type InfoResponse struct {
	User            models.User `json:"user"`
	CurrentView     string      `json:"current_view"`
	RewardAvailable bool        `json:"reward_available"`
}
