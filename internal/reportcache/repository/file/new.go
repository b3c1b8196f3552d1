package file

import (
	"os"
	"sync"

	"donation-report-srv/internal/reportcache/repository"
	"donation-report-srv/pkg/log"

	"github.com/jonboulle/clockwork"
)

const (
	filePrefix   = "report_"
	fileSuffix   = ".json"
	expiresField = "_expires_at"
)

type implRepository struct {
	dir   string
	clock clockwork.Clock
	l     log.Logger

	// writeMu serialises writers so a temp file is never renamed over a newer one.
	writeMu sync.Mutex
}

// New returns the file cache tier, one JSON document per key under dir.
func New(dir string, clock clockwork.Clock, l log.Logger) (repository.TierRepository, error) {
	if dir == "" {
		return nil, repository.ErrCacheDirRequired
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &implRepository{dir: dir, clock: clock, l: l}, nil
}
