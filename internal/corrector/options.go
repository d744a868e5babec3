package corrector

import "github.com/HxshPatil/indian-names-corrector/internal/oracle"

// Option tunes a NameCorrector at construction time.
type Option func(*NameCorrector)

// WithOracle installs the fallback oracle consulted for unmatched tokens.
func WithOracle(o oracle.Oracle) Option {
	return func(nc *NameCorrector) { nc.oracle = o }
}

// WithMaxEditDistance overrides the acceptance threshold.
func WithMaxEditDistance(d int) Option {
	return func(nc *NameCorrector) {
		if d > 0 {
			nc.cfg.MaxEditDistance = d
		}
	}
}

// WithTopKCandidates overrides the size of the ranked candidate list.
func WithTopKCandidates(k int) Option {
	return func(nc *NameCorrector) {
		if k > 0 {
			nc.cfg.TopKCandidates = k
		}
	}
}
