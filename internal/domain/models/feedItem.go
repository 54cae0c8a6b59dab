package models

type FeedType string

const (
	FeedVideo FeedType = "video"
	FeedAudio FeedType = "audio"
	FeedText  FeedType = "text"
	FeedImage FeedType = "image"
)

// FeedItem is a published content entry. Items are created only through the
// administrative add operation and are never edited or deleted.
type FeedItem struct {
	ID         string   `json:"id"`
	Type       FeedType `json:"type"`
	Title      string   `json:"title"`
	Content    string   `json:"content"` // URL or body text
	Thumbnail  string   `json:"thumbnail,omitempty"`
	PlaybackID string   `json:"playback_id,omitempty"`
	Date       string   `json:"date"` // YYYY-MM-DD
	Series     string   `json:"series"`
}
