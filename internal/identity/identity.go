// Package identity defines the identity-provider collaborator. The protocol
// behind it is not this system's concern; it only yields a display name, an
// email, an optional avatar and an optional chain address. Any failure falls
// back to a locally fabricated guest identity instead of blocking entry.
package identity

import (
	"context"
	"errors"
)

// ErrUnavailable covers initialization errors, user-cancelled flows and
// timeouts; callers recover with the guest fallback.
var ErrUnavailable = errors.New("identity provider unavailable")

// Claims is what the provider knows about the authenticated user.
type Claims struct {
	Name      string
	Email     string
	AvatarURL string
}

type Provider interface {
	// Connect establishes the external login flow.
	Connect(ctx context.Context) error
	// UserInfo returns the provider's claims after a successful Connect.
	UserInfo(ctx context.Context) (Claims, error)
	// AccountAddress returns the chain address tied to the login, if any.
	AccountAddress(ctx context.Context) (string, error)
}
