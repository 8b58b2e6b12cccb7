// Package extract turns raw text into the bounded byte sequence the
// transformer consumes.
package extract

import (
	"github.com/bft-labs/enochian/internal/domain"
	"github.com/bft-labs/enochian/internal/ports"
)

// Extractor converts text into a ByteSequence, halving it once when its
// sum exceeds the master name sum.
type Extractor struct {
	threshold int
	policy    domain.OverflowPolicy
	logger    ports.Logger
}

// New creates an Extractor using c.MasterNameSum as threshold and empty-input default.
func New(c domain.PipelineConstants, policy domain.OverflowPolicy, logger ports.Logger) *Extractor {
	return &Extractor{
		threshold: c.MasterNameSum,
		policy:    policy,
		logger:    logger,
	}
}

// Extract returns the UTF-8 bytes of source.
//
// Empty input yields a single value standing for the master name sum.
// When the byte sum exceeds the threshold only the first len/2 bytes are
// kept; this happens once even if the shorter sequence is still above it.
func (e *Extractor) Extract(source string) domain.ByteSequence {
	if source == "" {
		v := int64(e.threshold)
		if !domain.Fits(v) {
			e.logger.Warn("empty source default does not fit in a byte",
				ports.Int("requested", e.threshold),
				ports.Int("stored", int(e.policy.Narrow(v))),
				ports.String("policy", e.policy.String()),
			)
		}
		return domain.ByteSequence{e.policy.Narrow(v)}
	}

	raw := domain.ByteSequence(source)
	sum := raw.Sum()
	truncated := false
	if sum > e.threshold {
		raw = raw[:len(raw)/2]
		truncated = true
	}

	e.logger.Debug("raw energy extracted",
		ports.Int("length", len(raw)),
		ports.Int("sum", raw.Sum()),
		ports.Int("source_sum", sum),
		ports.Bool("truncated", truncated),
	)
	return raw
}
