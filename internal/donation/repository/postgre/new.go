package postgre

import (
	"database/sql"
	"sync"

	"donation-report-srv/internal/donation/repository"
	"donation-report-srv/pkg/log"
)

const tableName = "donations_raw"

type implRepository struct {
	db *sql.DB
	l  log.Logger

	// modification column, resolved on first successful lookup
	modMu       sync.Mutex
	modResolved bool
	modColumn   string
}

func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
