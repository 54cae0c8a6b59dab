package dto

// swagger:model
type FeedItemRequest struct {
	Type       string `json:"type" binding:"required,oneof=video audio text image" example:"video"`
	Title      string `json:"title" binding:"required" example:"Series 4: The Return"`
	PlaybackID string `json:"playback_id,omitempty" example:"8b3bdq"`
	Body       string `json:"body,omitempty" example:"Studio notes from last night."`
	Series     string `json:"series" example:"Series 4"`
}
