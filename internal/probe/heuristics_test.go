package probe

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHeuristics_KnownThrottledIDs(t *testing.T) {
	h := DefaultHeuristics()
	for _, id := range []string{"313", "248", "271", "308", "315"} {
		f := FormatDescriptor{ID: id, Container: "webm", Height: 1080, VideoCodec: "vp9"}
		if !h.IsThrottled(f) {
			t.Errorf("id %s: got not throttled, want throttled", id)
		}
	}
}

func TestIsThrottled_CodecPrefixRule(t *testing.T) {
	h := DefaultHeuristics()
	cases := []struct {
		name string
		f    FormatDescriptor
		want bool
	}{
		{"webm vp9.2", FormatDescriptor{ID: "999", Container: "webm", VideoCodec: "vp9.2"}, true},
		{"webm av01", FormatDescriptor{ID: "999", Container: "webm", VideoCodec: "av01.0.08M.08"}, true},
		{"mp4 vp9 (wrong container)", FormatDescriptor{ID: "999", Container: "mp4", VideoCodec: "vp9"}, false},
		{"webm avc1 (safe codec)", FormatDescriptor{ID: "999", Container: "webm", VideoCodec: "avc1"}, false},
		{"unlisted id, safe pairing", FormatDescriptor{ID: "299", Container: "mp4", VideoCodec: "avc1"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.IsThrottled(tc.f); got != tc.want {
				t.Errorf("IsThrottled: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLoadHeuristics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "throttle.yaml")
	yaml := `version: "2026-01"
throttled_ids: ["400", "401"]
throttled_container: "webm"
throttled_codec_prefixes: ["av01"]
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := LoadHeuristics(path)
	if err != nil {
		t.Fatalf("LoadHeuristics: %v", err)
	}
	if h.Version != "2026-01" {
		t.Errorf("Version: got %q, want 2026-01", h.Version)
	}
	if !h.IsThrottled(FormatDescriptor{ID: "400"}) {
		t.Error("id 400 should be throttled under the override")
	}
	if h.IsThrottled(FormatDescriptor{ID: "313", Container: "webm", VideoCodec: "vp9"}) {
		t.Error("313/vp9 should not be throttled: the override replaces the builtin table")
	}
}

func TestLoadHeuristics_Errors(t *testing.T) {
	if _, err := LoadHeuristics(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("version: \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHeuristics(empty); err == nil {
		t.Error("expected error for a table naming nothing throttled")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("throttled_ids: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHeuristics(bad); err == nil {
		t.Error("expected error for unparsable YAML")
	}
}
