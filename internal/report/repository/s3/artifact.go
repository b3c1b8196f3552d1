package s3

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"donation-report-srv/internal/report"
	"donation-report-srv/internal/report/repository"
)

func (r *implRepository) Upload(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", repository.ErrArtifactNotFound
		}
		return "", fmt.Errorf("%w: %v", repository.ErrUploadFailed, err)
	}
	defer f.Close()

	key := repository.ObjectKey(localPath)
	if err := r.s3.PutObject(ctx, key, f, report.ContentType); err != nil {
		r.l.Errorf(ctx, "report.repository.s3.Upload: PutObject %s failed: %v", key, err)
		return "", fmt.Errorf("%w: %v", repository.ErrUploadFailed, err)
	}

	url, err := r.s3.PresignGetObject(ctx, key, repository.PresignExpiry)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.s3.Upload: presign %s failed: %v", key, err)
		return "", fmt.Errorf("%w: %v", repository.ErrPresignFailed, err)
	}

	r.l.Infof(ctx, "report.repository.s3.Upload: uploaded %s to s3://%s/%s", localPath, r.s3.Bucket(), key)
	return url, nil
}
