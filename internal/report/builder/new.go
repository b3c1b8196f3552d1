package builder

import (
	"os"

	"donation-report-srv/internal/report"
	"donation-report-srv/pkg/log"

	"github.com/jonboulle/clockwork"
)

const (
	fileTimeLayout = "20060102_150405"
	currentLabel   = "current"
)

type implBuilder struct {
	outputDir string
	clock     clockwork.Clock
	l         log.Logger
}

// New returns a PDF report builder writing into outputDir.
func New(outputDir string, clock clockwork.Clock, l log.Logger) (report.Builder, error) {
	if outputDir == "" {
		return nil, ErrOutputDirRequired
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	return &implBuilder{outputDir: outputDir, clock: clock, l: l}, nil
}
