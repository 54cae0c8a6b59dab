package dto

// swagger:model
type AuthRequest struct {
	Username string `json:"username" example:"RootDown"`
	Email    string `json:"email" example:"rootdown@fttf.local"`
	Guest    bool   `json:"guest,omitempty"`
}

// swagger:model
type OverrideRequest struct {
	Code string `json:"code" binding:"required" example:"system-override"`
}

// swagger:model
type SessionResponse struct {
	Status       string `json:"status" example:"success"`
	Message      string `json:"message" example:"Authorization successful"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Time         string `json:"time"`
}
