package selector

import "github.com/backmassage/ytbatch/internal/probe"

// Format expressions passed verbatim to yt-dlp's -f selector syntax.
const (
	// ExprBest requests maximum quality with no fallback chain.
	ExprBest = "bestvideo+bestaudio"

	// ExprBestFallback requests maximum quality with a merged-format fallback.
	ExprBestFallback = "bestvideo+bestaudio/best"

	// ExprMP4Capped caps at mp4 1080p, the usual non-throttled alternative.
	ExprMP4Capped = "bestvideo[ext=mp4][height<=1080]+bestaudio[ext=m4a]/best[ext=mp4]"

	// ExprPlainBest is the single-file default for unprobed hosts.
	ExprPlainBest = "best"
)

// Outcome is one format-selection decision. The warning and downgrade flags
// are purely advisory output and never alter control flow.
type Outcome struct {
	Expr          string // Format expression for yt-dlp -f.
	WarnThrottled bool   // Best available format is known-throttled.
	Downgraded    bool   // A faster mp4 alternative was chosen over best.
}

// Select maps a probe summary (nil when the probe was skipped or failed)
// and the force-best flag to a format expression. Pure function: identical
// inputs always yield identical outcomes.
//
// The known-throttled best format is usually paired with an acceptable
// mp4-at-or-below-1080p alternative; that alternative is preferred unless
// the caller explicitly demands maximum quality.
func Select(res *probe.Result, forceBest bool) Outcome {
	if forceBest {
		if res != nil {
			return Outcome{Expr: ExprBest, WarnThrottled: res.BestIsThrottled}
		}
		return Outcome{Expr: ExprBestFallback}
	}

	if res == nil {
		return Outcome{Expr: ExprMP4Capped}
	}

	if res.BestIsThrottled {
		if res.HasMP4Under1080 {
			return Outcome{Expr: ExprMP4Capped, Downgraded: true}
		}
		return Outcome{Expr: ExprBestFallback, WarnThrottled: true}
	}
	return Outcome{Expr: ExprBestFallback}
}

// Bypass is the selection for URLs outside the throttle-aware domain,
// which skip the prober entirely. Never warns.
func Bypass(forceBest bool) Outcome {
	if forceBest {
		return Outcome{Expr: ExprBestFallback}
	}
	return Outcome{Expr: ExprPlainBest}
}
