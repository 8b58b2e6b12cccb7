package domain

import "math"

// Default constant values.
const (
	DefaultMasterNameSum   = 664
	DefaultPerfectedTarget = 496
	DefaultBlackCrossKey   = 58
	DefaultEsotericD       = 13
	DefaultMultiplier      = 7
	DefaultEntropyCeiling  = 2.0
	DefaultChecksumModulus = 1000

	// SymmetryWork is the PSL(2,7) group order. It is reported, never computed with.
	SymmetryWork = 168
)

// PipelineConstants holds every fixed number the pipeline depends on.
// Use DefaultConstants() and call Validate() once before building a pipeline.
type PipelineConstants struct {
	// MasterNameSum is the extraction threshold and the empty-input default.
	MasterNameSum int

	// PerfectedTarget is both the value the scaling formula must produce
	// and the checksum target.
	PerfectedTarget int

	// BlackCrossKey, EsotericD and Multiplier feed the scaling formula
	// (BlackCrossKey + EsotericD) * Multiplier - 1.
	BlackCrossKey int
	EsotericD     int
	Multiplier    int

	// EntropyCeiling is the highest entropy a Result may carry.
	EntropyCeiling float64

	// ChecksumModulus reduces the coin sum before comparing it to PerfectedTarget.
	ChecksumModulus int
}

// DefaultConstants returns the reference constants.
func DefaultConstants() PipelineConstants {
	return PipelineConstants{
		MasterNameSum:   DefaultMasterNameSum,
		PerfectedTarget: DefaultPerfectedTarget,
		BlackCrossKey:   DefaultBlackCrossKey,
		EsotericD:       DefaultEsotericD,
		Multiplier:      DefaultMultiplier,
		EntropyCeiling:  DefaultEntropyCeiling,
		ChecksumModulus: DefaultChecksumModulus,
	}
}

// ScalingConstant evaluates the scaling formula.
func (c PipelineConstants) ScalingConstant() int {
	return (c.BlackCrossKey+c.EsotericD)*c.Multiplier - 1
}

// Validate runs the startup self-check. The scaling formula must equal the
// perfected target; any other inconsistency is reported the same way.
func (c PipelineConstants) Validate() error {
	if got := c.ScalingConstant(); got != c.PerfectedTarget {
		return configErrorf("scaling_constant", "(%d + %d) * %d - 1 = %d, want %d",
			c.BlackCrossKey, c.EsotericD, c.Multiplier, got, c.PerfectedTarget)
	}
	if c.PerfectedTarget <= 0 {
		return configErrorf("perfected_target", "must be positive, got %d", c.PerfectedTarget)
	}
	if c.MasterNameSum < 0 {
		return configErrorf("master_name_sum", "must not be negative, got %d", c.MasterNameSum)
	}
	if c.ChecksumModulus <= 0 {
		return configErrorf("checksum_modulus", "must be positive, got %d", c.ChecksumModulus)
	}
	if math.IsNaN(c.EntropyCeiling) || c.EntropyCeiling < 0 {
		return configErrorf("entropy_ceiling", "must be a non-negative number, got %v", c.EntropyCeiling)
	}
	return nil
}
