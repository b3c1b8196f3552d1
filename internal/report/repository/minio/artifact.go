package minio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"donation-report-srv/internal/report"
	"donation-report-srv/internal/report/repository"
	pkgMinio "donation-report-srv/pkg/minio"
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

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", repository.ErrUploadFailed, err)
	}

	objectName := repository.ObjectKey(localPath)
	if _, err := r.minio.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:   r.bucket,
		ObjectName:   objectName,
		OriginalName: filepath.Base(localPath),
		Reader:       f,
		Size:         info.Size(),
		ContentType:  report.ContentType,
	}); err != nil {
		r.l.Errorf(ctx, "report.repository.minio.Upload: UploadFile %s failed: %v", objectName, err)
		return "", fmt.Errorf("%w: %v", repository.ErrUploadFailed, err)
	}

	presigned, err := r.minio.GetPresignedDownloadURL(ctx, &pkgMinio.PresignedURLRequest{
		BucketName: r.bucket,
		ObjectName: objectName,
		Method:     pkgMinio.MethodGET,
		Expiry:     repository.PresignExpiry,
	})
	if err != nil {
		r.l.Errorf(ctx, "report.repository.minio.Upload: presign %s failed: %v", objectName, err)
		return "", fmt.Errorf("%w: %v", repository.ErrPresignFailed, err)
	}

	r.l.Infof(ctx, "report.repository.minio.Upload: uploaded %s to %s/%s", localPath, r.bucket, objectName)
	return presigned.URL, nil
}
