package catalog

import "github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"

var events = []models.Event{
	{
		ID:          "ev1",
		Title:       "Warehouse Sessions 009",
		Date:        "2026-09-19",
		Time:        "23:00",
		Description: "All-night jungle transmission from the vault. Strictly amen.",
		Image:       "https://picsum.photos/800/400?random=9",
		Lineup:      []string{"DJ Darkmatter", "Flora", "RootDown"},
	},
	{
		ID:          "ev2",
		Title:       "Open Decks: New Blood",
		Date:        "2026-10-03",
		Time:        "21:00",
		Description: "First come, first served. Bring a USB and a bassline.",
		Image:       "https://picsum.photos/800/400?random=10",
		Lineup:      []string{},
	},
	{
		ID:          "ev3",
		Title:       "Series 4 Premiere",
		Date:        "2026-10-31",
		Time:        "22:00",
		Description: "The archive goes live. Premiere stream plus Q&A with the Core Team.",
		Image:       "https://picsum.photos/800/400?random=11",
		Lineup:      []string{"Core Team"},
	},
}

// Events returns the transmission schedule.
func Events() []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)
	return out
}

func EventByID(id string) (models.Event, bool) {
	for _, ev := range events {
		if ev.ID == id {
			return ev, true
		}
	}
	return models.Event{}, false
}
