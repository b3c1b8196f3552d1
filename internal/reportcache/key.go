package reportcache

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"donation-report-srv/internal/model"
)

// DeriveKey identifies a logical report request independently of the data behind it.
// The end component is date only, so a current-year report keeps one key all day.
func DeriveKey(req model.ReportRequest, r model.DateRange, version string) model.CacheKey {
	base := strings.Join([]string{
		string(req.PeriodType),
		req.YearString(),
		r.StartString(),
		r.CacheEnd,
		version,
	}, "_")
	return model.CacheKey(shortDigest(base))
}

// shortDigest is the first 16 hex chars of md5(s). Not a security boundary.
func shortDigest(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:16]
}
