package repository

import (
	"path"
	"path/filepath"
	"time"
)

const (
	// ObjectPrefix is the key prefix under which report artifacts are stored.
	ObjectPrefix = "reports"
	// PresignExpiry is how long a returned download URL stays valid.
	PresignExpiry = 7 * 24 * time.Hour
)

// ObjectKey maps a local artifact path to its object key.
func ObjectKey(localPath string) string {
	return path.Join(ObjectPrefix, filepath.Base(localPath))
}
