package domain

import (
	"fmt"
	"math"
	"strings"
)

// ByteSequence is an ordered run of unsigned 8-bit values.
// Producers always hand out a fresh slice; holders must not modify it.
type ByteSequence []byte

// Sum returns the sum of all values.
func (s ByteSequence) Sum() int {
	total := 0
	for _, b := range s {
		total += int(b)
	}
	return total
}

// Clone returns a copy of s.
func (s ByteSequence) Clone() ByteSequence {
	if s == nil {
		return nil
	}
	out := make(ByteSequence, len(s))
	copy(out, s)
	return out
}

// Ints returns the values widened to int, for encoders that would otherwise
// render a byte slice as base64.
func (s ByteSequence) Ints() []int {
	out := make([]int, len(s))
	for i, b := range s {
		out[i] = int(b)
	}
	return out
}

// OverflowPolicy decides how a value outside [0, 255] is stored in a byte.
type OverflowPolicy int

const (
	// OverflowWrap keeps the low eight bits, matching a fixed-width unsigned cast.
	OverflowWrap OverflowPolicy = iota

	// OverflowClamp saturates at 0 and 255.
	OverflowClamp
)

// String returns the policy name used in configuration.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowWrap:
		return "wrap"
	case OverflowClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// ParseOverflowPolicy parses "wrap" or "clamp". An empty string selects wrap.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap":
		return OverflowWrap, nil
	case "clamp":
		return OverflowClamp, nil
	default:
		return OverflowWrap, fmt.Errorf("unknown overflow policy %q (want wrap or clamp)", s)
	}
}

// Fits reports whether v can be stored in a byte unchanged.
func Fits(v int64) bool {
	return v >= 0 && v <= math.MaxUint8
}

// Narrow stores v in a byte according to the policy.
func (p OverflowPolicy) Narrow(v int64) byte {
	if p == OverflowClamp {
		switch {
		case v < 0:
			return 0
		case v > math.MaxUint8:
			return math.MaxUint8
		}
		return byte(v)
	}
	return byte(uint64(v))
}
