package probe

// FormatDescriptor is one entry from the probed format list. It exists only
// for the duration of a single probe call and is never persisted.
type FormatDescriptor struct {
	ID         string // Opaque format identifier (itag), e.g. "313".
	Container  string // Container extension, e.g. "mp4", "webm".
	Height     int    // Pixel height; 0 means unknown or audio-only.
	VideoCodec string // Video codec; "none" denotes an audio-only track.
}

// Result is the derived summary of one probed format list.
type Result struct {
	// HasMP4Under1080 reports whether at least one mp4 descriptor with
	// 0 < height <= 1080 exists. Independent of throttle classification.
	HasMP4Under1080 bool

	// BestIsThrottled reports whether the best-height video descriptor
	// matches the throttle heuristics.
	BestIsThrottled bool
}
