package models

// Tender is the currency chosen to pay for a purchase.
type Tender string

const (
	TenderCash   Tender = "cash"
	TenderPoints Tender = "points"
)

// Product is an immutable catalog entry. A nil price means the product is not
// offered for that tender; every product must offer at least one.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceCash   *int    `json:"price_cash,omitempty" validate:"required_without=PricePoints,omitempty,gt=0"` // pence
	PricePoints *int    `json:"price_points,omitempty" validate:"required_without=PriceCash,omitempty,gt=0"`
	Image       string  `json:"image"`
	Assets      []Asset `json:"assets" validate:"required,min=1,dive"`
}
