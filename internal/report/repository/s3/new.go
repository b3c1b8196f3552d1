package s3

import (
	"donation-report-srv/internal/report/repository"
	"donation-report-srv/pkg/log"
	pkgS3 "donation-report-srv/pkg/s3"
)

type implRepository struct {
	s3 pkgS3.IS3
	l  log.Logger
}

// New returns an ArtifactRepository backed by an S3 bucket.
func New(s3 pkgS3.IS3, l log.Logger) repository.ArtifactRepository {
	return &implRepository{s3: s3, l: l}
}
