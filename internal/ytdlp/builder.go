package ytdlp

import (
	"path/filepath"
	"strconv"

	"github.com/backmassage/ytbatch/internal/config"
)

// Job holds the per-URL inputs of one download invocation.
type Job struct {
	URL       string
	Format    string // Format expression from the selector, passed to -f verbatim.
	OutputDir string // Resolved per-list-file output directory.
	UseAria2c bool   // Route the transfer through the aria2c accelerator.
}

// DownloadArgs constructs the complete yt-dlp argument slice for a job,
// argv[0] included. The fixed side flags (description, metadata, auto subs)
// match the legacy tool; the accelerator path swaps yt-dlp's own fragment
// parallelism for aria2c's segmented connections.
func DownloadArgs(cfg *config.Config, job *Job) []string {
	args := make([]string, 0, 32)

	args = append(args, "yt-dlp", job.URL,
		"--download-archive", cfg.ArchiveFile,
		"--user-agent", cfg.UserAgent,
		"-f", job.Format,
		"--prefer-ffmpeg",
		"--write-description",
		"--add-metadata",
		"--write-auto-sub",
		"--embed-subs",
	)

	if job.UseAria2c {
		args = append(args,
			"--external-downloader", "aria2c",
			"--external-downloader-args", cfg.Aria2cArgs,
		)
	} else {
		args = append(args,
			"--concurrent-fragments", strconv.Itoa(cfg.FragmentConcurrency),
			"--no-part",
		)
	}

	args = append(args, "-o", filepath.Join(job.OutputDir, cfg.OutputTemplate))
	return args
}
