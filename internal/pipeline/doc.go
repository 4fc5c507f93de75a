// Package pipeline orchestrates list-file discovery, the sequential
// per-URL probe → select → download loop, and batch summary reporting.
//
// Types:
//   - ListFile: one input list file and its output-directory stem.
//   - RunStats: aggregate counters across a batch run.
//   - Pipeline: the wired collaborators (config, logger, runner, strategy).
//
// Functions:
//   - Discover(urlDir) → []ListFile: regular files, sorted.
//   - ReadURLs(path) → []string: lines minus blanks and # comments.
//   - EnsureLayout: first-run scaffolding of the urls directory.
//   - (*Pipeline).Run(ctx) → RunStats: the batch entry point. One failed
//     URL never aborts the batch; a failed list file aborts only itself.
package pipeline
