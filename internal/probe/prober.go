package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoFormats is returned when the metadata payload has no "formats" field.
var ErrNoFormats = errors.New("metadata payload has no formats field")

// Runner executes an external command and returns its captured stdout.
// Defined here (rather than importing the ytdlp package) so that probe
// stays dependency-light and testable with canned output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Prober wraps the yt-dlp metadata-introspection call.
type Prober struct {
	run  Runner
	heur Heuristics
}

// New returns a Prober that invokes commands through run and classifies
// formats with heur.
func New(run Runner, heur Heuristics) *Prober {
	return &Prober{run: run, heur: heur}
}

// Probe runs a single `yt-dlp -J` call against url and returns the
// classified result. Any failure (spawn error, non-zero exit, unparsable
// payload, missing formats field) is returned as an error; callers treat
// it as "no information" and fall back to the no-probe default policy.
func (p *Prober) Probe(ctx context.Context, url string) (*Result, error) {
	out, err := p.run.Output(ctx, "yt-dlp", "-J", url)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp -J %q: %w", url, err)
	}
	return ParseFormats(out, p.heur)
}

// ParseFormats converts a raw yt-dlp -J payload into a classified Result.
// Exported for testing without a real yt-dlp binary.
func ParseFormats(data []byte, heur Heuristics) (*Result, error) {
	var raw ytdlpMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yt-dlp JSON: %w", err)
	}
	if raw.Formats == nil {
		return nil, ErrNoFormats
	}

	formats := make([]FormatDescriptor, len(raw.Formats))
	for i, f := range raw.Formats {
		formats[i] = FormatDescriptor{
			ID:         f.FormatID,
			Container:  f.Ext,
			Height:     f.Height,
			VideoCodec: f.Vcodec,
		}
	}

	res := Classify(formats, heur)
	return &res, nil
}

// Classify derives the probe summary from a format list. The list's own
// ordering is authoritative: on equal height the earliest-seen descriptor
// stays the best, and no re-sorting happens. Audio-only descriptors
// (VideoCodec == "none") are never eligible as best.
func Classify(formats []FormatDescriptor, heur Heuristics) Result {
	var res Result
	var best *FormatDescriptor

	for i := range formats {
		f := &formats[i]

		if !res.HasMP4Under1080 && f.Container == "mp4" && f.Height > 0 && f.Height <= 1080 {
			res.HasMP4Under1080 = true
		}

		if f.VideoCodec == "none" {
			continue
		}
		if best == nil || f.Height > best.Height {
			best = f
		}
	}

	if best != nil {
		res.BestIsThrottled = heur.IsThrottled(*best)
	}
	return res
}

// --- yt-dlp -J wire types ---

type ytdlpMetadata struct {
	Formats []ytdlpFormat `json:"formats"`
}

type ytdlpFormat struct {
	FormatID string `json:"format_id"`
	Ext      string `json:"ext"`
	Height   int    `json:"height"`
	Vcodec   string `json:"vcodec"`
}
