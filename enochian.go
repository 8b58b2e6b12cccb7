// Package enochian turns text into a perfected coin: a byte sequence scaled so
// its sum hits the perfected target, with Shannon entropy at or below a ceiling.
//
// Example usage:
//
//	p, err := enochian.NewPipeline(enochian.DefaultConstants())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coin, err := p.Execute("AAAA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(coin.Sum(), coin.ChecksumMatchesTarget())
package enochian

import (
	"github.com/bft-labs/enochian/internal/app"
	"github.com/bft-labs/enochian/internal/domain"
	"github.com/bft-labs/enochian/internal/ports"
)

// Constants holds every fixed number the pipeline depends on.
type Constants = domain.PipelineConstants

// ByteSequence is an ordered run of unsigned 8-bit values.
type ByteSequence = domain.ByteSequence

// Result is the immutable coin produced by a pipeline run.
type Result = domain.Result

// OverflowPolicy decides how scaled values outside [0, 255] become bytes.
type OverflowPolicy = domain.OverflowPolicy

// Overflow policies.
const (
	OverflowWrap  = domain.OverflowWrap
	OverflowClamp = domain.OverflowClamp
)

// Pipeline runs extraction, transformation and validation.
// A Pipeline is not safe for concurrent use.
type Pipeline = app.Pipeline

// Option configures a Pipeline.
type Option = app.Option

// Logger is the logging interface pipelines write to.
type Logger = ports.Logger

// Errors returned by the pipeline. Match them with errors.Is.
var (
	ErrConfiguration = domain.ErrConfiguration
	ErrValidation    = domain.ErrValidation
)

// DefaultConstants returns the reference constants.
func DefaultConstants() Constants {
	return domain.DefaultConstants()
}

// NewPipeline builds a Pipeline after running the constants self-check.
func NewPipeline(c Constants, opts ...Option) (*Pipeline, error) {
	return app.NewPipeline(c, opts...)
}

// WithLogger sets the pipeline logger.
func WithLogger(logger Logger) Option {
	return app.WithLogger(logger)
}

// WithOverflowPolicy sets how out-of-range scaled values are narrowed.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return app.WithOverflowPolicy(p)
}

// Execute runs a one-off pipeline with the default constants.
func Execute(source string) (Result, error) {
	p, err := NewPipeline(DefaultConstants())
	if err != nil {
		return Result{}, err
	}
	return p.Execute(source)
}
