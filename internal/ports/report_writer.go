package ports

import (
	"context"

	"github.com/bft-labs/enochian/internal/report"
)

// ReportWriter delivers a finished run report.
// Implementations should write atomically so readers never see a partial report.
type ReportWriter interface {
	Write(ctx context.Context, r report.Report) error
}
