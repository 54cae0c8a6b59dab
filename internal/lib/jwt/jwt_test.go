package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGeneratePairAndParse(t *testing.T) {
	gen := NewGenerator("secret", time.Minute, time.Hour)

	access, refresh, err := gen.GeneratePair("user-1")
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty token returned")
	}

	sub, err := gen.Parse(access)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if sub != "user-1" {
		t.Errorf("subject = %q, want user-1", sub)
	}
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	gen := NewGenerator("secret", time.Minute, time.Hour)
	other := NewGenerator("different", time.Minute, time.Hour)

	access, _, err := gen.GeneratePair("user-1")
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}

	if _, err := other.Parse(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_RejectsExpiredToken(t *testing.T) {
	gen := NewGenerator("secret", -time.Minute, time.Hour)

	access, _, err := gen.GeneratePair("user-1")
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}

	if _, err := gen.Parse(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParse_RejectsRefreshToken(t *testing.T) {
	gen := NewGenerator("secret", time.Minute, time.Hour)

	_, refresh, err := gen.GeneratePair("user-1")
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}

	if _, err := gen.Parse(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh token must not pass as an access token, got %v", err)
	}
}

func TestParse_RejectsGarbage(t *testing.T) {
	gen := NewGenerator("secret", time.Minute, time.Hour)

	if _, err := gen.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
