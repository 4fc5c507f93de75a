package config

// This file registers the CLI flag surface on the cobra root command.
// Flags are grouped into selection, accelerator, paths, and display.

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RegisterFlags binds every user-facing flag to cfg. Defaults come from
// [DefaultConfig], so cobra's help output shows the real values.
func RegisterFlags(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()

	// Format selection.
	f.BoolVar(&cfg.ForceBestQuality, "force-best-quality", false,
		"Allow highest quality even if it may be throttled")
	f.BoolVar(&cfg.SkipProbe, "skip-probe", false,
		"Skip the format probe and use the capped default (faster)")
	f.StringVar(&cfg.HeuristicsFile, "throttle-list", "",
		"YAML file overriding the builtin throttled-format table")

	// Accelerator.
	f.BoolVar(&cfg.NoAria2c, "no-aria2c", false,
		"Disable aria2c even if installed")
	f.BoolVar(&cfg.PreferAria2c, "prefer-aria2c", false,
		"Prefer aria2c and warn if it's unavailable")
	f.BoolVar(&cfg.ForceAria2c, "use-aria2c", false,
		"Force use of aria2c even for YouTube")

	// Downloader.
	f.BoolVar(&cfg.UpdateYtdlp, "update-ytdlp", false,
		"Force yt-dlp to update before running")
	f.StringVar(&cfg.OutputTemplate, "output-template", cfg.OutputTemplate,
		"yt-dlp output template, joined under the output directory")

	// Paths.
	f.StringVar(&cfg.URLDir, "urls-dir", cfg.URLDir,
		"Directory containing .urls list files")
	f.StringVarP(&cfg.OutputDir, "output-dir", "o", cfg.OutputDir,
		"Base directory for downloaded videos")
	f.StringVar(&cfg.ArchiveFile, "archive", cfg.ArchiveFile,
		"Download archive file consumed by yt-dlp")

	// Behavior.
	f.BoolVarP(&cfg.DryRun, "dry-run", "d", false,
		"Preview commands only; do not download")

	// Display and diagnostics.
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	f.Var(&colorModeValue{&cfg.ColorMode}, "color",
		"Color mode: auto | always | never")
	f.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	f.BoolVarP(&cfg.CheckOnly, "check", "c", false,
		"Run system diagnostics and exit")
}

// colorModeValue adapts ColorMode to pflag.Value so --color is validated
// at parse time.
type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	mode := ColorMode(s)
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		*c.p = mode
		return nil
	}
	return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
}
