package dto

// swagger:model
type PurchaseRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"p1"`
	Tender    string `json:"tender" binding:"required,oneof=cash points" example:"points"`
}
