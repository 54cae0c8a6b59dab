package identity

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSimulated_HappyPath(t *testing.T) {
	ctx := context.Background()
	provider := NewSimulated(
		WithDelay(0),
		WithClaims(Claims{Name: "Flora", Email: "flora@fttf.local"}),
	)

	if err := provider.Connect(ctx); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	claims, err := provider.UserInfo(ctx)
	if err != nil {
		t.Fatalf("UserInfo failed: %v", err)
	}
	if claims.Name != "Flora" {
		t.Errorf("name = %q", claims.Name)
	}

	address, err := provider.AccountAddress(ctx)
	if err != nil {
		t.Fatalf("AccountAddress failed: %v", err)
	}
	if address == "" {
		t.Error("empty account address")
	}
}

func TestSimulated_FailureMode(t *testing.T) {
	provider := NewSimulated(WithDelay(0), WithFailure())

	if err := provider.Connect(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestSimulated_ContextCancelledDuringDelay(t *testing.T) {
	provider := NewSimulated(WithDelay(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := provider.Connect(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable on cancellation, got %v", err)
	}
}
