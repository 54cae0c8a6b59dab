package view

import (
	"errors"
	"testing"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

func TestCoordinator_GateBlocksNavigation(t *testing.T) {
	c := NewCoordinator(nil)

	err := c.NavigateTo(ViewProfile, models.User{Username: "RootDown"})
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	current, authenticated := c.Current()
	if current != ViewStream || authenticated {
		t.Errorf("gate state changed: view=%q authenticated=%v", current, authenticated)
	}
}

func TestCoordinator_AuthenticateOpensNavigation(t *testing.T) {
	c := NewCoordinator(nil)
	c.Authenticate()

	if err := c.NavigateTo(ViewProfile, models.User{}); err != nil {
		t.Fatalf("NavigateTo failed: %v", err)
	}

	current, _ := c.Current()
	if current != ViewProfile {
		t.Errorf("current = %q, want profile", current)
	}
}

func TestCoordinator_AdminRequiresFlag(t *testing.T) {
	c := NewCoordinator(nil)
	c.Authenticate()

	if err := c.NavigateTo(ViewAdmin, models.User{}); !errors.Is(err, ErrViewForbidden) {
		t.Fatalf("expected ErrViewForbidden, got %v", err)
	}

	if err := c.NavigateTo(ViewAdmin, models.User{IsAdmin: true}); err != nil {
		t.Fatalf("admin user denied: %v", err)
	}
}

func TestCoordinator_SelfTransitionIsNoOp(t *testing.T) {
	c := NewCoordinator(nil)
	c.Authenticate()

	if err := c.NavigateTo(ViewStream, models.User{}); err != nil {
		t.Fatalf("self transition rejected: %v", err)
	}
}

func TestCoordinator_ResetRaisesGate(t *testing.T) {
	c := NewCoordinator(nil)
	c.Authenticate()

	if err := c.NavigateTo(ViewShop, models.User{}); err != nil {
		t.Fatalf("NavigateTo failed: %v", err)
	}

	c.Reset()

	current, authenticated := c.Current()
	if current != ViewStream || authenticated {
		t.Errorf("after reset: view=%q authenticated=%v", current, authenticated)
	}

	if err := c.NavigateTo(ViewShop, models.User{}); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected gate after reset, got %v", err)
	}
}
