package dto

// swagger:model
type ChatMessageRequest struct {
	Text string `json:"text" binding:"required" example:"Can we get a rewind?"`
}
