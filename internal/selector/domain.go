package selector

import (
	"net/url"
	"strings"
)

// IsThrottleAwareHost reports whether rawURL points at the video host whose
// formats are subject to throttling (youtube.com and subdomains, youtu.be).
// Unparsable URLs are not throttle-aware; they fall through to the bypass
// selection and the downloader reports its own error.
func IsThrottleAwareHost(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "youtube.com" || host == "youtu.be" {
		return true
	}
	return strings.HasSuffix(host, ".youtube.com")
}
