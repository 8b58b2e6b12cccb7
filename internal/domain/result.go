package domain

import "math"

// Result is the perfected coin: a transformed sequence and its entropy.
// The zero value is not a valid Result; obtain one from NewResult.
type Result struct {
	data    ByteSequence
	entropy float64

	checksumTarget  int
	checksumModulus int
}

// NewResult validates entropy against the ceiling in c and returns the coin.
// The data slice is copied.
func NewResult(data ByteSequence, entropy float64, c PipelineConstants) (Result, error) {
	if math.IsNaN(entropy) || entropy > c.EntropyCeiling {
		return Result{}, &ValidationError{Entropy: entropy, Ceiling: c.EntropyCeiling}
	}
	return Result{
		data:            data.Clone(),
		entropy:         entropy,
		checksumTarget:  c.PerfectedTarget,
		checksumModulus: c.ChecksumModulus,
	}, nil
}

// Data returns a copy of the perfected sequence.
func (r Result) Data() ByteSequence { return r.data.Clone() }

// Entropy returns the Shannon entropy of the data in bits.
func (r Result) Entropy() float64 { return r.entropy }

// Len returns the number of values in the coin.
func (r Result) Len() int { return len(r.data) }

// Sum returns the unreduced sum of the coin.
func (r Result) Sum() int { return r.data.Sum() }

// Checksum returns the coin sum reduced by the checksum modulus.
// This is a placeholder for a richer checksum that reduces to the target.
func (r Result) Checksum() int {
	if r.checksumModulus <= 0 {
		return r.Sum()
	}
	return r.Sum() % r.checksumModulus
}

// ChecksumTarget returns the value Checksum is compared against.
func (r Result) ChecksumTarget() int { return r.checksumTarget }

// ChecksumMatchesTarget reports whether the checksum equals the target.
// A mismatch is a reported condition, not an error.
func (r Result) ChecksumMatchesTarget() bool {
	return r.Checksum() == r.checksumTarget
}
