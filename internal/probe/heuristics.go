package probe

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Heuristics is the throttle-classification table: a snapshot of which
// format identifiers and codec/container pairings YouTube is known to
// throttle. The service changes this behavior over time, so the table is
// versioned data, not logic: update the builtin default or point
// --throttle-list at a YAML override.
type Heuristics struct {
	// Version labels the snapshot (e.g. a date) for --check output.
	Version string `yaml:"version"`

	// ThrottledIDs lists format identifiers observed to be throttled.
	ThrottledIDs []string `yaml:"throttled_ids"`

	// ThrottledContainer is the container whose modern codecs are
	// throttled when paired with ThrottledCodecPrefixes.
	ThrottledContainer string `yaml:"throttled_container"`

	// ThrottledCodecPrefixes lists video codec prefixes (e.g. "vp9")
	// that mark a ThrottledContainer format as throttled.
	ThrottledCodecPrefixes []string `yaml:"throttled_codec_prefixes"`
}

// DefaultHeuristics returns the builtin snapshot of YouTube's throttling
// behavior: itags 313/248/271/308/315 plus webm vp9/av01 variants.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		Version:                "2024-06",
		ThrottledIDs:           []string{"313", "248", "271", "308", "315"},
		ThrottledContainer:     "webm",
		ThrottledCodecPrefixes: []string{"vp9", "av01"},
	}
}

// LoadHeuristics reads a YAML override table from path. The file fully
// replaces the builtin default, so it must name at least one throttled
// identifier or codec prefix.
func LoadHeuristics(path string) (Heuristics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Heuristics{}, fmt.Errorf("read throttle list: %w", err)
	}

	var h Heuristics
	if err := yaml.Unmarshal(data, &h); err != nil {
		return Heuristics{}, fmt.Errorf("parse throttle list %q: %w", path, err)
	}
	if len(h.ThrottledIDs) == 0 && len(h.ThrottledCodecPrefixes) == 0 {
		return Heuristics{}, fmt.Errorf("throttle list %q names no throttled ids or codec prefixes", path)
	}
	return h, nil
}

// IsThrottled reports whether a single format descriptor matches the table:
// either its identifier is listed, or it is a ThrottledContainer format
// whose video codec starts with one of the listed prefixes.
func (h Heuristics) IsThrottled(f FormatDescriptor) bool {
	for _, id := range h.ThrottledIDs {
		if f.ID == id {
			return true
		}
	}
	if f.Container != h.ThrottledContainer {
		return false
	}
	for _, prefix := range h.ThrottledCodecPrefixes {
		if strings.HasPrefix(f.VideoCodec, prefix) {
			return true
		}
	}
	return false
}
