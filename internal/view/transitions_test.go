package view

import "testing"

func TestIsTransitionAllowed(t *testing.T) {
	cases := []struct {
		name string
		from View
		to   View
		want bool
	}{
		{"stream to profile", ViewStream, ViewProfile, true},
		{"stream to shop", ViewStream, ViewShop, true},
		{"stream to admin", ViewStream, ViewAdmin, true},
		{"profile to shop", ViewProfile, ViewShop, true},
		{"shop back to profile", ViewShop, ViewProfile, true},
		{"admin to shop", ViewAdmin, ViewShop, true},
		{"anything to stream", ViewAdmin, ViewStream, true},
		{"profile to stream", ViewProfile, ViewStream, true},
		{"unknown from", View("nowhere"), ViewProfile, false},
		{"unknown to", ViewStream, View("nowhere"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTransitionAllowed(tc.from, tc.to); got != tc.want {
				t.Errorf("IsTransitionAllowed(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, v := range []View{ViewStream, ViewProfile, ViewShop, ViewAdmin} {
		got, err := Parse(string(v))
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", v, err)
		}
		if got != v {
			t.Errorf("Parse(%q) = %q", v, got)
		}
	}

	if _, err := Parse("lobby"); err == nil {
		t.Error("Parse accepted an unknown view")
	}
}
