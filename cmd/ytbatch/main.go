// Command ytbatch batch-downloads the videos listed in .urls files via
// yt-dlp, one output directory per list file, with a persisted download
// archive and throttle-aware format selection for YouTube URLs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/ytbatch/internal/check"
	"github.com/backmassage/ytbatch/internal/config"
	"github.com/backmassage/ytbatch/internal/display"
	"github.com/backmassage/ytbatch/internal/logging"
	"github.com/backmassage/ytbatch/internal/pipeline"
	"github.com/backmassage/ytbatch/internal/probe"
	"github.com/backmassage/ytbatch/internal/selector"
	"github.com/backmassage/ytbatch/internal/ytdlp"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()

	root := &cobra.Command{
		Use:           "ytbatch",
		Short:         "Batch video downloader driving yt-dlp from .urls list files",
		Version:       version + " (" + commit + ")",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd.Context(), &cfg)
		},
	}
	config.RegisterFlags(root, &cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ytbatch: %v\n", err)
		return 1
	}
	return 0
}

func runBatch(ctx context.Context, cfg *config.Config) error {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so validation
	// errors surface through cobra to stderr. Once NewLogger succeeds,
	// all output goes through the logger for consistent formatting and
	// log-file capture.
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	runner := ytdlp.NewSystemRunner()

	// Phase 2: Diagnostics-only mode.
	if cfg.CheckOnly {
		check.RunCheck(ctx, cfg, runner, log)
		return nil
	}

	// Phase 3: Hard dependency gate before any list file is touched.
	if err := check.CheckDeps(); err != nil {
		fmt.Fprintln(os.Stderr, check.InstallHint)
		return err
	}

	if cfg.UpdateYtdlp {
		if err := ytdlp.Update(ctx, runner); err != nil {
			log.Warn("Failed to update yt-dlp: %v", err)
		}
	} else if outdated, err := ytdlp.Outdated(ctx, runner); err == nil && outdated {
		log.Warn("yt-dlp is outdated. Run `yt-dlp -U` to update and avoid throttling or bugs.")
	}

	aria2c := check.Aria2cAvailable()
	if cfg.PreferAria2c && !aria2c && !cfg.NoAria2c {
		log.Warn("aria2c not found. Install it with `sudo apt install aria2` or disable with --no-aria2c.")
	}

	// Phase 4: First-run scaffolding. When the layout was just created
	// there is nothing to download yet; explain and exit cleanly.
	created, err := pipeline.EnsureLayout(cfg.URLDir, log)
	if err != nil {
		return err
	}
	if created {
		return nil
	}

	// Phase 5: Wire the selection strategy and run the batch.
	heur := probe.DefaultHeuristics()
	if cfg.HeuristicsFile != "" {
		heur, err = probe.LoadHeuristics(cfg.HeuristicsFile)
		if err != nil {
			return err
		}
		log.Debug(cfg.Verbose, "Throttle table override: %s (version %s)", cfg.HeuristicsFile, heur.Version)
	}

	var strategy selector.Strategy
	if cfg.SkipProbe {
		strategy = selector.SkipProbe{}
	} else {
		strategy = &selector.ProbeStrategy{
			Prober: probe.New(runner, heur),
			OnProbeError: func(url string, err error) {
				log.Warn("Probe failed for %s, using default selection: %v", url, err)
			},
		}
	}

	p := &pipeline.Pipeline{
		Cfg:        cfg,
		Log:        log,
		Runner:     runner,
		Strategy:   strategy,
		Aria2cBase: !cfg.NoAria2c && aria2c,
	}
	stats := p.Run(ctx)

	if stats.NoURLs() {
		log.Warn("No URLs found in the .urls files. Add URLs one per line; lines starting with '#' are comments.")
	}
	return nil
}
