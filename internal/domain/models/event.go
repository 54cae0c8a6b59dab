package models

// Event is an upcoming transmission users can subscribe to.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Lineup      []string `json:"lineup"`
}
