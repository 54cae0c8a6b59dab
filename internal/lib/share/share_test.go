package share

import (
	"strings"
	"testing"
)

func TestFor_EscapesURLAndText(t *testing.T) {
	targets := For("https://fourtothefloor.live/?s=4", "big vibes & basslines")

	if !strings.Contains(targets.Twitter, "https%3A%2F%2Ffourtothefloor.live") {
		t.Errorf("twitter target not escaped: %q", targets.Twitter)
	}
	if !strings.Contains(targets.Twitter, "big+vibes+%26+basslines") {
		t.Errorf("twitter text not escaped: %q", targets.Twitter)
	}
	if !strings.HasPrefix(targets.Facebook, "https://www.facebook.com/sharer/sharer.php?u=") {
		t.Errorf("facebook target malformed: %q", targets.Facebook)
	}
	if targets.Copy != "https://fourtothefloor.live/?s=4" {
		t.Errorf("copy target must carry the raw URL, got %q", targets.Copy)
	}
}

func TestDefault_UsesStockMessage(t *testing.T) {
	targets := Default("https://fourtothefloor.live")

	if !strings.Contains(targets.Twitter, "organic+frequency") {
		t.Errorf("default message missing: %q", targets.Twitter)
	}
}
