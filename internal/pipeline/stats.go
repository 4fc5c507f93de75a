package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	ListFiles  int // List files discovered.
	URLs       int // Non-comment, non-blank lines processed.
	Downloaded int // Downloader invocations that exited zero (or dry-run previews).
	Failed     int // Downloader invocations that exited non-zero.
}

// NoURLs reports whether every discovered list file held no URLs at all.
func (s *RunStats) NoURLs() bool {
	return s.URLs == 0
}
