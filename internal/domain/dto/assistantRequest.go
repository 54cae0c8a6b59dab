package dto

// swagger:model
type AssistantRequest struct {
	Message string `json:"message" binding:"required" example:"how do points work?"`
}

// swagger:model
type AssistantResponse struct {
	Reply string `json:"reply"`
}
