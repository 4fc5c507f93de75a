// Package probe queries yt-dlp for the available formats of a URL and
// classifies the result for the format selector. A single `yt-dlp -J`
// JSON call per URL replaces any per-format inspection.
//
// Types:
//   - FormatDescriptor: one entry of the probed format list (ephemeral).
//   - Result: the derived summary (HasMP4Under1080, BestIsThrottled).
//   - Heuristics: the named, versioned throttle-classification table,
//     injected into the Prober so future service changes stay a data edit.
//
// Functions:
//   - (*Prober).Probe(ctx, url) → *Result
//     Runs yt-dlp -J through the injected Runner.
//   - ParseFormats(data, heuristics) → *Result
//     Exported for testing without a real yt-dlp binary.
//   - Classify(formats, heuristics) → Result
//     Pure classification over descriptors.
//
// Probe failures (non-zero exit, bad JSON, missing "formats") are advisory:
// callers fall back to the no-probe default selection and keep going.
package probe
