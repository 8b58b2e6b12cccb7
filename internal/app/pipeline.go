package app

import (
	"fmt"

	"github.com/bft-labs/enochian/internal/domain"
	"github.com/bft-labs/enochian/internal/extract"
	"github.com/bft-labs/enochian/internal/ports"
	"github.com/bft-labs/enochian/internal/report"
	"github.com/bft-labs/enochian/internal/transform"
)

// Pipeline sequences extraction, transformation and checksum validation.
// A Pipeline is not safe for concurrent use; give each concurrent run its own.
type Pipeline struct {
	extractor   *extract.Extractor
	transformer *transform.Transformer
	logger      ports.Logger
}

// NewPipeline builds a pipeline over c. The constants self-check runs here,
// once; a failure is returned as a domain.ConfigurationError.
func NewPipeline(c domain.PipelineConstants, opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tr, err := transform.New(c, o.policy, o.logger)
	if err != nil {
		return nil, fmt.Errorf("create transformer: %w", err)
	}

	return &Pipeline{
		extractor:   extract.New(c, o.policy, o.logger),
		transformer: tr,
		logger:      o.logger,
	}, nil
}

// Execute runs source through the pipeline and returns the coin.
// A checksum mismatch is logged, not returned.
func (p *Pipeline) Execute(source string) (domain.Result, error) {
	res, _, err := p.execute(source)
	return res, err
}

// Run executes source and summarizes the run in a report labelled name.
func (p *Pipeline) Run(name, source string) (report.Report, error) {
	res, raw, err := p.execute(source)
	if err != nil {
		return report.Report{}, err
	}
	return report.New(name, raw, res)
}

func (p *Pipeline) execute(source string) (domain.Result, domain.ByteSequence, error) {
	p.logger.Debug("pipeline started", ports.Int("symmetry_work", domain.SymmetryWork))

	raw := p.extractor.Extract(source)
	res, err := p.transformer.Interpret(raw)
	if err != nil {
		return domain.Result{}, raw, err
	}

	if res.ChecksumMatchesTarget() {
		p.logger.Info("harmony achieved",
			ports.Int("checksum", res.Checksum()),
			ports.Float64("entropy", res.Entropy()),
		)
	} else {
		p.logger.Warn("harmony approximated",
			ports.Int("checksum", res.Checksum()),
			ports.Int("target", res.ChecksumTarget()),
			ports.Float64("entropy", res.Entropy()),
		)
	}
	return res, raw, nil
}
