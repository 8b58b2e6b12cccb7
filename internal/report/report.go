// Package report describes a finished pipeline run and renders it for humans
// and machines.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/enochian/internal/domain"
)

// Report is the serializable summary of one pipeline run.
type Report struct {
	RunID  string `json:"run_id" yaml:"run_id"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	RawLength int `json:"raw_length" yaml:"raw_length"`
	RawSum    int `json:"raw_sum" yaml:"raw_sum"`

	Length  int     `json:"length" yaml:"length"`
	Sum     int     `json:"sum" yaml:"sum"`
	Entropy float64 `json:"entropy" yaml:"entropy"`

	Checksum        int  `json:"checksum" yaml:"checksum"`
	ChecksumTarget  int  `json:"checksum_target" yaml:"checksum_target"`
	ChecksumMatches bool `json:"checksum_matches" yaml:"checksum_matches"`

	// Fingerprint is a CIDv1 (raw, sha2-256) over the coin data.
	Fingerprint  string `json:"fingerprint" yaml:"fingerprint"`
	SymmetryWork int    `json:"symmetry_work" yaml:"symmetry_work"`

	Data        []int     `json:"data" yaml:"data,flow"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// New builds a report for res, which was minted from raw.
func New(source string, raw domain.ByteSequence, res domain.Result) (Report, error) {
	data := res.Data()
	fp, err := Fingerprint(data)
	if err != nil {
		return Report{}, err
	}
	return Report{
		RunID:           uuid.NewString(),
		Source:          source,
		RawLength:       len(raw),
		RawSum:          raw.Sum(),
		Length:          res.Len(),
		Sum:             res.Sum(),
		Entropy:         res.Entropy(),
		Checksum:        res.Checksum(),
		ChecksumTarget:  res.ChecksumTarget(),
		ChecksumMatches: res.ChecksumMatchesTarget(),
		Fingerprint:     fp,
		SymmetryWork:    domain.SymmetryWork,
		Data:            data.Ints(),
		GeneratedAt:     time.Now().UTC(),
	}, nil
}
