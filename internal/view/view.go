// Package view tracks which top-level overlay is active and guards the
// transitions between them.
package view

import "fmt"

// View represents a top-level overlay of the client.
type View string

const (
	// ViewStream is the initial state: the live player with chat.
	ViewStream View = "stream"
	// ViewProfile is the account/wallet/public-page overlay.
	ViewProfile View = "profile"
	// ViewShop is the digital asset store overlay.
	ViewShop View = "shop"
	// ViewAdmin is the CMS console, reachable only by administrators.
	ViewAdmin View = "admin"
)

// Parse validates a view name coming off the wire.
func Parse(s string) (View, error) {
	switch v := View(s); v {
	case ViewStream, ViewProfile, ViewShop, ViewAdmin:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q", s)
	}
}
