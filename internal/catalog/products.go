package catalog

import "github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"

func pence(v int) *int { return &v }

var products = []models.Product{
	{
		ID:          "p1",
		Name:        "Rave Starter Pack",
		Description: "5x Fire, 5x Rewind. Essential reactions.",
		PriceCash:   pence(499),
		PricePoints: pence(500),
		Image:       "https://images.unsplash.com/photo-1541701494587-cb58502866ab?q=80&w=2070&auto=format&fit=crop",
		Assets: []models.Asset{
			{ID: "e1", Type: models.AssetEmoji, Name: "Fire", Icon: "🔥", Quantity: 5},
			{ID: "e2", Type: models.AssetEmoji, Name: "Rewind", Icon: "⏪", Quantity: 5},
		},
	},
	{
		ID:          "p2",
		Name:        "Junglist Massive",
		Description: "10x Lighter, 10x Gunfinger. Proper heavy.",
		PriceCash:   pence(899),
		PricePoints: pence(1200),
		Image:       "https://images.unsplash.com/photo-1563089145-599997674d42?q=80&w=2070&auto=format&fit=crop",
		Assets: []models.Asset{
			{ID: "e3", Type: models.AssetEmoji, Name: "Lighter", Icon: "🕯️", Quantity: 10},
			{ID: "e4", Type: models.AssetEmoji, Name: "Gunfinger", Icon: "👆", Quantity: 10},
		},
	},
	{
		ID:          "p3",
		Name:        "Vibes Only",
		Description: "Limited edition \"Wave\" reaction.",
		PriceCash:   pence(299),
		PricePoints: pence(300),
		Image:       "https://images.unsplash.com/photo-1514525253440-b393452e27ab?q=80&w=2074&auto=format&fit=crop",
		Assets: []models.Asset{
			{ID: "e5", Type: models.AssetEmoji, Name: "Wave", Icon: "🌊", Quantity: 10},
		},
	},
}

// Products returns the shop catalog. Entries are deep copies; callers may not
// mutate reference data.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = copyProduct(p)
	}
	return out
}

func ProductByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return copyProduct(p), true
		}
	}
	return models.Product{}, false
}

func copyProduct(p models.Product) models.Product {
	out := p
	out.Assets = make([]models.Asset, len(p.Assets))
	copy(out.Assets, p.Assets)
	return out
}
