package playback

import "testing"

func TestResolve(t *testing.T) {
	if got := Resolve("8b3bdq"); got != "https://livepeercdn.studio/hls/8b3bdq/index.m3u8" {
		t.Errorf("Resolve returned %q", got)
	}

	if got := Resolve(""); got != DefaultSource {
		t.Errorf("empty playback id should resolve to the holding stream, got %q", got)
	}
}
