package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/backmassage/ytbatch/internal/config"
	"github.com/backmassage/ytbatch/internal/display"
	"github.com/backmassage/ytbatch/internal/logging"
	"github.com/backmassage/ytbatch/internal/selector"
	"github.com/backmassage/ytbatch/internal/ytdlp"
)

// Pipeline holds the wired collaborators for one batch run. URLs are
// processed strictly sequentially: one probe-select-download sequence
// completes (including the downloader's full exit) before the next starts.
type Pipeline struct {
	Cfg      *config.Config
	Log      *logging.Logger
	Runner   ytdlp.Runner
	Strategy selector.Strategy // Selection for throttle-aware-host URLs.

	// Aria2cBase is the accelerator's base availability (installed and
	// not disabled). It applies only to non-throttle-aware hosts unless
	// the config forces it.
	Aria2cBase bool
}

// Run is the top-level batch entry point: discover list files, process each
// one, report the summary. A failed list file aborts only itself.
func (p *Pipeline) Run(ctx context.Context) RunStats {
	var stats RunStats

	files, err := Discover(p.Cfg.URLDir)
	if err != nil {
		p.Log.Error("List-file discovery failed: %v", err)
		return stats
	}
	stats.ListFiles = len(files)
	p.Log.Info("Found %d list files in %s", stats.ListFiles, p.Cfg.URLDir)

	for _, lf := range files {
		if ctx.Err() != nil {
			p.Log.Warn("Interrupted")
			break
		}
		p.processListFile(ctx, lf, &stats)
	}

	p.logSummary(&stats)
	return stats
}

// processListFile resolves the output directory for one list file and runs
// every URL in it. Directory-creation and read failures abort this list
// file only, never the batch.
func (p *Pipeline) processListFile(ctx context.Context, lf ListFile, stats *RunStats) {
	outDir := lf.OutputDir(p.Cfg.OutputDir)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		p.Log.Error("Cannot create output directory %s: %v (skipping %s)", outDir, err, filepath.Base(lf.Path))
		return
	}

	urls, err := ReadURLs(lf.Path)
	if err != nil {
		p.Log.Error("Cannot read list file %s: %v", lf.Path, err)
		return
	}
	if len(urls) == 0 {
		p.Log.Debug(p.Cfg.Verbose, "%s: no URLs", filepath.Base(lf.Path))
		return
	}

	p.Log.Info("%s: %d URLs -> %s", filepath.Base(lf.Path), len(urls), outDir)
	for _, url := range urls {
		if ctx.Err() != nil {
			return
		}
		p.processURL(ctx, url, outDir, stats)
	}
}

// processURL runs one URL through select -> warn -> download. Downloader
// failures are logged and counted; the batch keeps going.
func (p *Pipeline) processURL(ctx context.Context, url, outDir string, stats *RunStats) {
	stats.URLs++

	throttleAware := selector.IsThrottleAwareHost(url)
	var outcome selector.Outcome
	if throttleAware {
		outcome = p.Strategy.Choose(ctx, url, p.Cfg.ForceBestQuality)
	} else {
		outcome = selector.Bypass(p.Cfg.ForceBestQuality)
	}

	if p.Cfg.ForceAria2c && throttleAware {
		p.Log.Warn("Using aria2c on YouTube may result in slow downloads.")
	}
	if outcome.WarnThrottled {
		p.Log.Warn("Best available format is known to be heavily throttled by YouTube. Expect very slow downloads unless using VPN or alternate format.")
	}
	if outcome.Downgraded {
		p.Log.Info("Capping at mp4 1080p to avoid a throttled format (pass --force-best-quality to override)")
	}

	job := &ytdlp.Job{
		URL:       url,
		Format:    outcome.Expr,
		OutputDir: outDir,
		UseAria2c: p.useAria2c(throttleAware),
	}
	args := ytdlp.DownloadArgs(p.Cfg, job)
	p.Log.Debug(p.Cfg.Verbose, "$ %s", display.FormatCommand(args))

	if p.Cfg.DryRun {
		p.Log.Success("[DRY] Would download %s (format %s)", url, outcome.Expr)
		stats.Downloaded++
		return
	}

	err := p.Runner.Run(ctx, args[0], args[1:]...)
	p.Log.Info("Download finished with %s", display.FormatExitStatus(err))
	if err != nil {
		p.Log.Error("Download failed: %s", url)
		stats.Failed++
		return
	}
	stats.Downloaded++
}

// useAria2c applies the accelerator decision order: forced > base
// availability on non-throttle-aware hosts > off.
func (p *Pipeline) useAria2c(throttleAware bool) bool {
	if p.Cfg.ForceAria2c {
		return true
	}
	if p.Aria2cBase {
		return !throttleAware
	}
	return false
}

func (p *Pipeline) logSummary(stats *RunStats) {
	p.Log.Info("==============================")
	if p.Cfg.DryRun {
		p.Log.Info("Done (dry run): %d of %d URLs previewed", stats.Downloaded, stats.URLs)
		return
	}
	p.Log.Info("Done: %d downloaded, %d failed (of %d URLs in %d list files)",
		stats.Downloaded, stats.Failed, stats.URLs, stats.ListFiles)
}
