// Package ytdlp builds and executes yt-dlp invocations.
//
// Types:
//   - Runner: the small process-execution interface the prober and the
//     pipeline depend on, so decision logic tests never spawn processes.
//   - SystemRunner: the os/exec implementation; downloads stream their
//     output, probes capture it.
//   - Job: one download invocation's inputs.
//
// Functions:
//   - DownloadArgs(cfg, job) → []string
//     Full argument slice including archive, format, side files, and
//     either aria2c accelerator flags or fragment-parallelism flags.
//   - Update / Outdated: yt-dlp self-update handling.
package ytdlp
