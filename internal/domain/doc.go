// Package domain contains the core value types of the enochian pipeline.
//
// This package is the innermost layer. It has no dependencies on logging,
// the file system or the command line and holds only the pipeline's
// numeric rules and invariants.
//
// # Types
//
//   - [PipelineConstants]: the fixed numeric configuration, self-checked once at startup
//   - [ByteSequence]: an ordered run of unsigned 8-bit values
//   - [OverflowPolicy]: how out-of-range values are narrowed into a byte
//   - [Result]: the immutable coin pairing a perfected sequence with its entropy
//
// # Invariants
//
// A [Result] can only be obtained through [NewResult], which rejects any entropy
// above the configured ceiling with a [ValidationError]. Constants whose scaling
// formula disagrees with the perfected target are rejected by
// [PipelineConstants.Validate] with a [ConfigurationError].
package domain
