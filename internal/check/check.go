// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for yt-dlp, ffmpeg, and aria2c.
package check

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/ytbatch/internal/config"
	"github.com/backmassage/ytbatch/internal/probe"
	"github.com/backmassage/ytbatch/internal/ytdlp"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrYtdlpNotFound  = errors.New("yt-dlp not found on PATH")
	ErrFfmpegNotFound = errors.New("ffmpeg not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// CheckDeps is the pre-run validation: yt-dlp and ffmpeg must be on PATH
// before any list file is touched. aria2c is optional and checked
// separately. Returns a sentinel error on failure.
func CheckDeps() error {
	if _, err := exec.LookPath("yt-dlp"); err != nil {
		return ErrYtdlpNotFound
	}
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	return nil
}

// Aria2cAvailable reports whether the aria2c accelerator is on PATH.
func Aria2cAvailable() bool {
	_, err := exec.LookPath("aria2c")
	return err == nil
}

// InstallHint is printed once when CheckDeps fails, so a fresh machine gets
// actionable guidance instead of a bare error.
const InstallHint = `Install the required tools before running:
  Linux:
    sudo curl -L https://github.com/yt-dlp/yt-dlp/releases/latest/download/yt-dlp -o /usr/local/bin/yt-dlp
    sudo chmod a+rx /usr/local/bin/yt-dlp
    sudo apt-get install ffmpeg
  Windows: download the executables and add them to your PATH:
    yt-dlp: https://github.com/yt-dlp/yt-dlp/releases/latest
    ffmpeg: https://www.gyan.dev/ffmpeg/builds/`

// RunCheck runs the interactive --check flow: tool presence and versions,
// aria2c availability, update status, and throttle-list validity.
// This is informational only, it does not stop on failure.
func RunCheck(ctx context.Context, cfg *config.Config, run ytdlp.Runner, log Logger) {
	log.Info("=== System Check ===")

	checkTool(ctx, run, log, "yt-dlp", "--version")
	checkTool(ctx, run, log, "ffmpeg", "-version")

	if Aria2cAvailable() {
		log.Success("aria2c: available")
	} else {
		log.Warn("aria2c: not found (downloads fall back to yt-dlp fragment parallelism)")
	}

	if outdated, err := ytdlp.Outdated(ctx, run); err != nil {
		log.Warn("yt-dlp update check failed: %v", err)
	} else if outdated {
		log.Warn("yt-dlp is outdated. Run `yt-dlp -U` to update and avoid throttling or bugs.")
	} else {
		log.Success("yt-dlp is up to date")
	}

	checkHeuristics(cfg, log)
}

// checkTool verifies the tool is on PATH and logs its version line.
func checkTool(ctx context.Context, run ytdlp.Runner, log Logger, name, versionFlag string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	out, err := run.Output(ctx, name, versionFlag)
	if err != nil {
		log.Warn("%s found but %s failed: %v", name, versionFlag, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
}

// checkHeuristics reports which throttle table is active and whether a
// configured override file loads.
func checkHeuristics(cfg *config.Config, log Logger) {
	if cfg.HeuristicsFile == "" {
		h := probe.DefaultHeuristics()
		log.Info("Throttle table: builtin (version %s, %d ids)", h.Version, len(h.ThrottledIDs))
		return
	}
	h, err := probe.LoadHeuristics(cfg.HeuristicsFile)
	if err != nil {
		log.Error("Throttle table: %v", err)
		return
	}
	log.Success("Throttle table: %s (version %s, %d ids)", cfg.HeuristicsFile, h.Version, len(h.ThrottledIDs))
}
