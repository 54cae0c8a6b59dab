package models

type AssetType string

const (
	AssetEmoji  AssetType = "emoji"
	AssetBadge  AssetType = "badge"
	AssetTicket AssetType = "ticket"
)

// Asset is a countable owned item (reaction emoji, badge, ticket). Two assets
// are considered the same inventory entry when name and type match.
type Asset struct {
	ID       string    `json:"id"`
	Type     AssetType `json:"type"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"` // emoji char or image URL
	Quantity int       `json:"quantity"`
}
