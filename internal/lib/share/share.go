// Package share is the sharing collaborator: it builds external share-intent
// URLs for the current page. Fire-and-forget, no response handling.
package share

import (
	"fmt"
	"net/url"
)

const defaultText = "Connecting to the organic frequency on Four To The Floor."

// Targets lists the share destinations for a page. Copy carries the raw URL
// for a clipboard write on the client.
type Targets struct {
	Twitter  string
	Facebook string
	Copy     string
}

// For builds share targets for the given page URL and message.
func For(pageURL, text string) Targets {
	escapedURL := url.QueryEscape(pageURL)
	escapedText := url.QueryEscape(text)

	return Targets{
		Twitter:  fmt.Sprintf("https://twitter.com/intent/tweet?url=%s&text=%s", escapedURL, escapedText),
		Facebook: fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", escapedURL),
		Copy:     pageURL,
	}
}

// Default builds share targets with the stock stream message.
func Default(pageURL string) Targets {
	return For(pageURL, defaultText)
}
