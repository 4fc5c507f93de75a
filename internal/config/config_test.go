package config

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.URLDir != "urls" || cfg.OutputDir != "videos" || cfg.ArchiveFile != "downloaded.txt" {
		t.Errorf("paths: %+v", cfg)
	}
	if cfg.FragmentConcurrency != 10 {
		t.Errorf("FragmentConcurrency: got %d, want 10", cfg.FragmentConcurrency)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode: got %q, want auto", cfg.ColorMode)
	}
	if cfg.ForceBestQuality || cfg.SkipProbe || cfg.ForceAria2c {
		t.Errorf("behavior flags should default off: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", nil, false},
		{"check-only skips path checks", func(c *Config) { c.CheckOnly = true; c.URLDir = "" }, false},
		{"empty urls dir", func(c *Config) { c.URLDir = "" }, true},
		{"empty output template", func(c *Config) { c.OutputTemplate = "" }, true},
		{"bad color mode", func(c *Config) { c.ColorMode = "sometimes" }, true},
		{"no-aria2c with use-aria2c", func(c *Config) { c.NoAria2c = true; c.ForceAria2c = true }, true},
		{"no-aria2c with prefer-aria2c", func(c *Config) { c.NoAria2c = true; c.PreferAria2c = true }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tc.mutate != nil {
				tc.mutate(&cfg)
			}
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate: got err=%v, wantErr=%v", err, tc.wantErr)
			}
		})
	}
}

func TestValidate_NormalizesDirArgs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URLDir = "lists///"
	cfg.OutputDir = "out/"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.URLDir != "lists" || cfg.OutputDir != "out" {
		t.Errorf("normalized: %q, %q", cfg.URLDir, cfg.OutputDir)
	}
}

func TestNormalizeDirArg_Root(t *testing.T) {
	if got := NormalizeDirArg("/"); got != "/" {
		t.Errorf("root: got %q, want /", got)
	}
}

func TestRegisterFlags_ParseAndValidate(t *testing.T) {
	cfg := DefaultConfig()
	cmd := &cobra.Command{Use: "ytbatch", RunE: func(*cobra.Command, []string) error { return nil }}
	RegisterFlags(cmd, &cfg)
	cmd.SetArgs([]string{
		"--force-best-quality", "--skip-probe", "--use-aria2c",
		"--urls-dir", "lists", "-o", "out/", "--color", "never", "-d",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !cfg.ForceBestQuality || !cfg.SkipProbe || !cfg.ForceAria2c || !cfg.DryRun {
		t.Errorf("bool flags: %+v", cfg)
	}
	if cfg.URLDir != "lists" || cfg.OutputDir != "out/" {
		t.Errorf("path flags: %q, %q", cfg.URLDir, cfg.OutputDir)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode: got %q", cfg.ColorMode)
	}
}

func TestRegisterFlags_RejectsBadColor(t *testing.T) {
	cfg := DefaultConfig()
	cmd := &cobra.Command{Use: "ytbatch", SilenceErrors: true, SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error { return nil }}
	RegisterFlags(cmd, &cfg)
	cmd.SetArgs([]string{"--color", "rainbow"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected parse error for invalid color mode")
	}
}
