package dto

// swagger:model
type StreamResponse struct {
	Source string       `json:"source"`
	Share  ShareTargets `json:"share"`
}

// swagger:model
type ShareTargets struct {
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	Copy     string `json:"copy"`
}

// swagger:model
type ErrorResponse struct {
	Error string `json:"error" example:"insufficient points"`
}
