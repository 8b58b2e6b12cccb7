// Package transform rescales an extracted byte sequence toward the
// perfected target and measures the dispersion of the result.
package transform

import (
	"math"

	"github.com/bft-labs/enochian/internal/domain"
	"github.com/bft-labs/enochian/internal/ports"
)

// Transformer applies the scaling constant to a sequence and mints the coin.
// Construct one per pipeline; it holds no state that changes between calls.
type Transformer struct {
	constants domain.PipelineConstants
	scaling   float64
	policy    domain.OverflowPolicy
	logger    ports.Logger
}

// Scaled is the intermediate product of a scaling pass.
type Scaled struct {
	Data   domain.ByteSequence
	Factor float64

	// Substituted is set when the input summed to zero and was replaced.
	Substituted bool

	// Narrowed counts elements whose scaled value did not fit in a byte.
	Narrowed int
}

// New validates c and returns a Transformer. Inconsistent constants yield
// a *domain.ConfigurationError and no Transformer.
func New(c domain.PipelineConstants, policy domain.OverflowPolicy, logger ports.Logger) (*Transformer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Transformer{
		constants: c,
		scaling:   float64(c.ScalingConstant()),
		policy:    policy,
		logger:    logger,
	}, nil
}

// ScalingConstant returns the validated scaling constant.
func (t *Transformer) ScalingConstant() float64 { return t.scaling }

// Scale multiplies each value by ScalingConstant / sum(raw), truncates the
// product and narrows it into a byte.
//
// A zero sum, including an empty sequence, is replaced by the single value
// PerfectedTarget with a sum of PerfectedTarget.
func (t *Transformer) Scale(raw domain.ByteSequence) Scaled {
	sum := raw.Sum()
	substituted := false
	if sum == 0 {
		target := t.constants.PerfectedTarget
		raw = domain.ByteSequence{t.policy.Narrow(int64(target))}
		sum = target
		substituted = true
	}

	factor := t.scaling / float64(sum)
	out := make(domain.ByteSequence, len(raw))
	narrowed := 0
	for i, b := range raw {
		v := int64(math.Floor(float64(b) * factor))
		if !domain.Fits(v) {
			narrowed++
		}
		out[i] = t.policy.Narrow(v)
	}

	return Scaled{Data: out, Factor: factor, Substituted: substituted, Narrowed: narrowed}
}

// Interpret scales raw, computes the entropy of the result and returns the
// validated coin. An entropy above the ceiling yields a *domain.ValidationError.
func (t *Transformer) Interpret(raw domain.ByteSequence) (domain.Result, error) {
	scaled := t.Scale(raw)
	entropy := Entropy(scaled.Data)

	t.logger.Debug("virgin transforming",
		ports.Float64("target", t.scaling),
		ports.Float64("scaling_factor", scaled.Factor),
		ports.Bool("substituted", scaled.Substituted),
		ports.Int("narrowed", scaled.Narrowed),
		ports.Float64("entropy", entropy),
	)
	if scaled.Narrowed > 0 {
		t.logger.Debug("scaled values narrowed into a byte",
			ports.Int("count", scaled.Narrowed),
			ports.String("policy", t.policy.String()),
		)
	}

	return domain.NewResult(scaled.Data, entropy, t.constants)
}
