package minio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

// --- implMinIO: connection ---

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	if !connected {
		return NewConnectionError(errors.New("not connected"))
	}
	if _, err := m.minioClient.BucketExists(ctx, m.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// --- implMinIO: bucket ---

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region})
	if err != nil {
		return handleMinIOError(err, "create_bucket")
	}
	return nil
}

func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	if err := validateBucketName(bucketName); err != nil {
		return false, err
	}
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, handleMinIOError(err, "check_bucket_exists")
	}
	return exists, nil
}

// --- implMinIO: upload / presign ---

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}
	opts := minio.PutObjectOptions{ContentType: req.ContentType, UserMetadata: map[string]string{}}
	for k, v := range req.Metadata {
		opts.UserMetadata[k] = v
	}
	if req.OriginalName != "" {
		opts.UserMetadata["original-name"] = req.OriginalName
	}
	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}
	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		OriginalName: req.OriginalName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
		Metadata:     req.Metadata,
	}, nil
}

func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if err := validatePresignedURLRequest(req); err != nil {
		return nil, err
	}
	url, err := m.minioClient.PresignedGetObject(ctx, req.BucketName, req.ObjectName, req.Expiry, nil)
	if err != nil {
		return nil, handleMinIOError(err, "get_presigned_download_url")
	}
	return &PresignedURLResponse{
		URL:       url.String(),
		ExpiresAt: time.Now().Add(req.Expiry),
		Method:    MethodGET,
	}, nil
}

// --- helpers ---

// handleMinIOError returns error (not *StorageError) so a nil cause yields an untyped nil.
func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		se := NewBucketNotFoundError(resp.BucketName)
		se.Operation, se.Cause = operation, err
		return se
	case "NoSuchKey":
		se := NewObjectNotFoundError(resp.Key)
		se.Operation, se.Cause = operation, err
		return se
	case "AccessDenied":
		return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
	case "":
		se := NewConnectionError(err)
		se.Operation = operation
		return se
	default:
		return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("operation failed: %s", resp.Code), Operation: operation, Cause: err}
	}
}
