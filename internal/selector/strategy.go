package selector

import (
	"context"

	"github.com/backmassage/ytbatch/internal/probe"
)

// Strategy turns a throttle-aware-host URL into a selection outcome. The
// probing strategy and the skip-probe fast path both satisfy it, so the
// pipeline and tests can swap them freely.
type Strategy interface {
	Choose(ctx context.Context, rawURL string, forceBest bool) Outcome
}

// ProbeStrategy probes the URL's available formats before selecting. Probe
// failures degrade to the absent-probe default selection; they never abort
// the run.
type ProbeStrategy struct {
	Prober *probe.Prober

	// OnProbeError, when set, is called with the degraded URL and error
	// so the caller can log the fallback. Advisory only.
	OnProbeError func(rawURL string, err error)
}

// Choose probes rawURL and selects from the classification.
func (s *ProbeStrategy) Choose(ctx context.Context, rawURL string, forceBest bool) Outcome {
	res, err := s.Prober.Probe(ctx, rawURL)
	if err != nil {
		if s.OnProbeError != nil {
			s.OnProbeError(rawURL, err)
		}
		res = nil
	}
	return Select(res, forceBest)
}

// SkipProbe is the fast path: it never probes and always selects with an
// absent probe summary.
type SkipProbe struct{}

// Choose selects with no probe information.
func (SkipProbe) Choose(_ context.Context, _ string, forceBest bool) Outcome {
	return Select(nil, forceBest)
}
