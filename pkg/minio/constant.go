package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
	disableKeepAlives   = false
)

const (
	// MaxFileSizeBytes is the maximum upload file size (5GB).
	MaxFileSizeBytes = 5 * 1024 * 1024 * 1024
	// MaxPresignedExpiry is the maximum presigned URL expiry (7 days).
	MaxPresignedExpiry = 7 * 24 * time.Hour
	// DefaultEndpointPort is appended to endpoint if no port.
	DefaultEndpointPort = ":9000"
)

// Presigned URL methods.
const (
	MethodGET = "GET"
)

// Storage error codes.
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeConnection     = "CONNECTION_ERROR"
)
