package minio

import (
	"donation-report-srv/internal/report/repository"
	"donation-report-srv/pkg/log"
	pkgMinio "donation-report-srv/pkg/minio"
)

type implRepository struct {
	minio  pkgMinio.MinIO
	bucket string
	l      log.Logger
}

// New returns an ArtifactRepository that stores reports in a MinIO bucket.
func New(minio pkgMinio.MinIO, bucket string, l log.Logger) repository.ArtifactRepository {
	return &implRepository{minio: minio, bucket: bucket, l: l}
}
