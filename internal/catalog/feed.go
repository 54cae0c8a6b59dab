package catalog

import "github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"

// PlaceholderThumbnail is used for admin uploads that come without artwork.
const PlaceholderThumbnail = "https://picsum.photos/600/400?grayscale"

var seedFeed = []models.FeedItem{
	{
		ID:      "f1",
		Type:    models.FeedVideo,
		Title:   "Series 1: The Beginning",
		Content: "https://videos.pexels.com/video-files/5849603/5849603-hd_1920_1080_30fps.mp4",
		Date:    "1998-11-04",
		Series:  "Series 1",
	},
	{
		ID:      "f2",
		Type:    models.FeedText,
		Title:   "Studio Update",
		Content: "The drum pattern is the heartbeat. The bass is the root system.",
		Date:    "1999-02-15",
		Series:  "Series 1",
	},
	{
		ID:        "f3",
		Type:      models.FeedAudio,
		Title:     "Live Session #004",
		Content:   "audio-placeholder",
		Thumbnail: "https://picsum.photos/400/100",
		Date:      "2001-06-20",
		Series:    "Series 2",
	},
	{
		ID:      "f4",
		Type:    models.FeedImage,
		Title:   "Rave Photo",
		Content: "https://picsum.photos/600/400?random=88",
		Date:    "2002-09-10",
		Series:  "Series 3",
	},
}

// SeedFeed returns the initial archive library, most-recent-first once loaded
// into a registry (the registry prepends on add, the seed keeps source order).
func SeedFeed() []models.FeedItem {
	out := make([]models.FeedItem, len(seedFeed))
	copy(out, seedFeed)
	return out
}
