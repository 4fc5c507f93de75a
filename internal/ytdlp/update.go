package ytdlp

import (
	"context"
	"strings"
)

// Update runs yt-dlp's self-updater and blocks until it finishes.
func Update(ctx context.Context, run Runner) error {
	return run.Run(ctx, "yt-dlp", "-U")
}

// Outdated runs the update check without updating and parses the report.
// A stale install prints both "Latest version:" and "Current version:"
// without the up-to-date notice. Errors are advisory; the caller warns and
// keeps going.
func Outdated(ctx context.Context, run Runner) (bool, error) {
	out, err := run.Output(ctx, "yt-dlp", "-U", "--", "--no-update")
	if err != nil {
		return false, err
	}
	return ParseUpdateReport(string(out)), nil
}

// ParseUpdateReport reports whether an update-check stdout indicates a
// stale install. Exported for testing without a yt-dlp binary.
func ParseUpdateReport(stdout string) bool {
	return strings.Contains(stdout, "Latest version:") &&
		strings.Contains(stdout, "Current version:") &&
		!strings.Contains(stdout, "yt-dlp is up to date")
}
