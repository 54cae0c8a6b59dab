package middlewares

import (
	"errors"
	"testing"
)

func TestCheckInput(t *testing.T) {
	cases := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{"valid with email", "RootDown", "rootdown@fttf.local", nil},
		{"valid without email", "RootDown", "", nil},
		{"empty username", "", "rootdown@fttf.local", ErrEmptyField},
		{"short username", "ab", "", ErrUsernameTooShort},
		{"bad email", "RootDown", "not-an-email", ErrInvalidEmail},
		{"email without tld", "RootDown", "root@local", ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckInput(tc.username, tc.email)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}
