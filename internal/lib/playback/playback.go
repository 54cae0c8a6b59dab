// Package playback is the media playback collaborator: given an optional
// playback identifier it resolves a playable source, falling back to the
// default stream asset.
package playback

import "fmt"

const (
	hlsTemplate = "https://livepeercdn.studio/hls/%s/index.m3u8"

	// DefaultSource is the holding stream shown when no playback id is
	// configured.
	DefaultSource = "https://videos.pexels.com/video-files/3129671/3129671-uhd_2560_1440_24fps.mp4"
)

// Resolve maps a playback id to its HLS URL, or the default source when the
// id is empty.
func Resolve(playbackID string) string {
	if playbackID == "" {
		return DefaultSource
	}

	return fmt.Sprintf(hlsTemplate, playbackID)
}
