// Package config holds runtime configuration: defaults, CLI flag
// registration, and validation. Defaults match the legacy single-file tool
// for parity (urls/, videos/, downloaded.txt).
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the registered CLI flags before being passed (by pointer)
// to packages that need it.
type Config struct {
	// Paths.
	URLDir      string // Directory of list files. Default: "urls".
	OutputDir   string // Base download directory. Default: "videos".
	ArchiveFile string // Append-only download archive. Default: "downloaded.txt".

	// Format selection.
	ForceBestQuality bool   // Allow highest quality even if it may be throttled.
	SkipProbe        bool   // Skip the format probe for speed.
	HeuristicsFile   string // Optional YAML override for the throttle table.

	// Accelerator.
	NoAria2c     bool // Disable aria2c even if installed.
	PreferAria2c bool // Warn when aria2c is unavailable.
	ForceAria2c  bool // Force aria2c even for the throttle-aware host.

	// Downloader invocation.
	UpdateYtdlp         bool   // Run yt-dlp -U before processing.
	OutputTemplate      string // yt-dlp -o template, joined under the output dir.
	UserAgent           string // Fixed default: "Mozilla/5.0".
	FragmentConcurrency int    // Fixed: 10 concurrent fragments without aria2c.
	Aria2cArgs          string // Fixed: "-x 4 -k 1M".

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// tool's behavior. Used as the base before CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		URLDir:              "urls",
		OutputDir:           "videos",
		ArchiveFile:         "downloaded.txt",
		OutputTemplate:      "%(title)s.%(ext)s",
		UserAgent:           "Mozilla/5.0",
		FragmentConcurrency: 10,
		Aria2cArgs:          "-x 4 -k 1M",
		ColorMode:           ColorAuto,
	}
}

// Validate checks flag combinations and required paths. It normalizes
// directory arguments in place.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.NoAria2c && c.ForceAria2c {
		return errors.New("--no-aria2c and --use-aria2c are mutually exclusive")
	}
	if c.NoAria2c && c.PreferAria2c {
		return errors.New("--no-aria2c and --prefer-aria2c are mutually exclusive")
	}

	if c.CheckOnly {
		return nil
	}
	if c.URLDir == "" || c.OutputDir == "" || c.ArchiveFile == "" {
		return errors.New("urls dir, output dir and archive file must not be empty")
	}
	if c.OutputTemplate == "" {
		return errors.New("output template must not be empty")
	}

	c.URLDir = NormalizeDirArg(c.URLDir)
	c.OutputDir = NormalizeDirArg(c.OutputDir)
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
