package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"donation-report-srv/internal/model"

	"github.com/google/uuid"
)

func (r *implRepository) path(key model.CacheKey) string {
	return filepath.Join(r.dir, filePrefix+string(key)+fileSuffix)
}

func (r *implRepository) Get(ctx context.Context, key model.CacheKey) (*model.CacheEntry, error) {
	p := r.path(key)
	raw, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		r.discard(ctx, p, err)
		return nil, nil
	}

	var doc map[string]string
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.discard(ctx, p, err)
		return nil, nil
	}

	if exp, ok := doc[expiresField]; ok && exp != "" {
		// An unparsable expiry is treated as none.
		if at, err := time.Parse(time.RFC3339Nano, exp); err == nil && !r.clock.Now().Before(at) {
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				r.l.Warnf(ctx, "reportcache.file.Get: remove expired %s: %v", p, err)
			}
			return nil, nil
		}
	}
	delete(doc, expiresField)

	return model.CacheEntryFromFields(doc), nil
}

// discard drops a file that cannot be read back as an entry.
func (r *implRepository) discard(ctx context.Context, p string, cause error) {
	r.l.Warnf(ctx, "reportcache.file.Get: dropping unreadable %s: %v", p, cause)
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.l.Warnf(ctx, "reportcache.file.Get: remove %s: %v", p, err)
	}
}

func (r *implRepository) Put(ctx context.Context, entry model.CacheEntry, ttl time.Duration) error {
	doc := entry.ToFields()
	if ttl > 0 {
		doc[expiresField] = r.clock.Now().Add(ttl).Format(time.RFC3339Nano)
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entry %s: %w", entry.ReportID, err)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	tmp := filepath.Join(r.dir, "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path(entry.ReportID)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename entry %s: %w", entry.ReportID, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, key model.CacheKey) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := os.Remove(r.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove entry %s: %w", key, err)
	}
	return nil
}

func (r *implRepository) Clear(ctx context.Context) (int, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	matches, err := filepath.Glob(filepath.Join(r.dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return 0, err
	}

	var (
		removed int
		errs    []error
	)
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
