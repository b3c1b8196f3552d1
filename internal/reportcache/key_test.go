package reportcache

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"testing"
	"time"

	"donation-report-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hex16 = regexp.MustCompile(`^[0-9a-f]{16}$`)

func TestDeriveKey(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	weekly, err := ComputeDateRange(model.PeriodWeekly, nil, now)
	require.NoError(t, err)

	t.Run("matches the documented base string", func(t *testing.T) {
		key := DeriveKey(model.ReportRequest{PeriodType: model.PeriodWeekly}, weekly, "11.0.0")

		sum := md5.Sum([]byte("weekly__2024-03-04 00:00:00_2024-03-10_11.0.0"))
		assert.Equal(t, model.CacheKey(hex.EncodeToString(sum[:])[:16]), key)
		assert.Regexp(t, hex16, string(key))
	})

	t.Run("stable within the same day", func(t *testing.T) {
		later, err := ComputeDateRange(model.PeriodWeekly, nil, now.Add(5*time.Hour))
		require.NoError(t, err)

		a := DeriveKey(model.ReportRequest{PeriodType: model.PeriodWeekly}, weekly, EngineVersion)
		b := DeriveKey(model.ReportRequest{PeriodType: model.PeriodWeekly}, later, EngineVersion)
		assert.Equal(t, a, b)
	})

	t.Run("version changes the key", func(t *testing.T) {
		a := DeriveKey(model.ReportRequest{PeriodType: model.PeriodWeekly}, weekly, "11.0.0")
		b := DeriveKey(model.ReportRequest{PeriodType: model.PeriodWeekly}, weekly, "12.0.0")
		assert.NotEqual(t, a, b)
	})

	t.Run("year changes the key", func(t *testing.T) {
		r, err := ComputeDateRange(model.PeriodYearly, intPtr(2023), now)
		require.NoError(t, err)

		withYear := DeriveKey(model.ReportRequest{PeriodType: model.PeriodYearly, Year: intPtr(2023)}, r, EngineVersion)
		withoutYear := DeriveKey(model.ReportRequest{PeriodType: model.PeriodYearly}, r, EngineVersion)
		assert.NotEqual(t, withYear, withoutYear)
	})

	t.Run("force flag does not change the key", func(t *testing.T) {
		a := DeriveKey(model.ReportRequest{PeriodType: model.PeriodWeekly}, weekly, EngineVersion)
		b := DeriveKey(model.ReportRequest{PeriodType: model.PeriodWeekly, ForceRegenerate: true}, weekly, EngineVersion)
		assert.Equal(t, a, b)
	})
}

func TestTTLFor(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, TTLFor(model.PeriodWeekly))
	assert.Equal(t, 7*24*time.Hour, TTLFor(model.PeriodMonthly))
	assert.Equal(t, 30*24*time.Hour, TTLFor(model.PeriodYearly))
}
