// Package selector decides which yt-dlp format expression to request for a
// URL, balancing quality against known throttling of specific formats.
//
// Select is a pure function of the probe summary and the force-best flag;
// Bypass covers hosts outside the throttle-aware domain. The Strategy
// interface makes the probing path and the skip-probe fast path
// interchangeable so both are testable without network access.
package selector
