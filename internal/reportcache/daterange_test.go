package reportcache

import (
	"testing"
	"time"

	"donation-report-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestComputeDateRange(t *testing.T) {
	at := func(y int, m time.Month, d, hh, mm, ss int) time.Time {
		return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
	}

	tests := []struct {
		name      string
		period    model.PeriodType
		year      *int
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
		wantCache string
	}{
		{
			name:      "weekly on a friday covers previous monday to sunday",
			period:    model.PeriodWeekly,
			now:       at(2024, time.March, 15, 10, 30, 0),
			wantStart: at(2024, time.March, 4, 0, 0, 0),
			wantEnd:   at(2024, time.March, 10, 10, 30, 0),
			wantCache: "2024-03-10",
		},
		{
			name:      "weekly on a monday covers the week that just ended",
			period:    model.PeriodWeekly,
			now:       at(2024, time.March, 18, 8, 0, 0),
			wantStart: at(2024, time.March, 11, 0, 0, 0),
			wantEnd:   at(2024, time.March, 17, 8, 0, 0),
			wantCache: "2024-03-17",
		},
		{
			name:      "weekly on a sunday skips the current week",
			period:    model.PeriodWeekly,
			now:       at(2024, time.March, 17, 23, 0, 0),
			wantStart: at(2024, time.March, 4, 0, 0, 0),
			wantEnd:   at(2024, time.March, 10, 23, 0, 0),
			wantCache: "2024-03-10",
		},
		{
			name:      "monthly handles leap february",
			period:    model.PeriodMonthly,
			now:       at(2024, time.March, 15, 10, 30, 0),
			wantStart: at(2024, time.February, 1, 0, 0, 0),
			wantEnd:   at(2024, time.February, 29, 10, 30, 0),
			wantCache: "2024-02-29",
		},
		{
			name:      "monthly in january crosses the year",
			period:    model.PeriodMonthly,
			now:       at(2024, time.January, 10, 9, 0, 0),
			wantStart: at(2023, time.December, 1, 0, 0, 0),
			wantEnd:   at(2023, time.December, 31, 9, 0, 0),
			wantCache: "2023-12-31",
		},
		{
			name:      "yearly past year is the full calendar year",
			period:    model.PeriodYearly,
			year:      intPtr(2023),
			now:       at(2024, time.March, 15, 10, 30, 0),
			wantStart: at(2023, time.January, 1, 0, 0, 0),
			wantEnd:   at(2023, time.December, 31, 23, 59, 59),
			wantCache: "2023-12-31",
		},
		{
			name:      "yearly current year ends now",
			period:    model.PeriodYearly,
			year:      intPtr(2024),
			now:       at(2024, time.March, 15, 10, 30, 0),
			wantStart: at(2024, time.January, 1, 0, 0, 0),
			wantEnd:   at(2024, time.March, 15, 10, 30, 0),
			wantCache: "2024-03-15",
		},
		{
			name:      "yearly without a year means the current year",
			period:    model.PeriodYearly,
			now:       at(2024, time.March, 15, 10, 30, 0),
			wantStart: at(2024, time.January, 1, 0, 0, 0),
			wantEnd:   at(2024, time.March, 15, 10, 30, 0),
			wantCache: "2024-03-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ComputeDateRange(tt.period, tt.year, tt.now)
			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(r.Start), "start = %s", r.Start)
			assert.True(t, tt.wantEnd.Equal(r.End), "end = %s", r.End)
			assert.Equal(t, tt.wantCache, r.CacheEnd)
			assert.False(t, r.Start.After(r.End))
		})
	}
}

func TestComputeDateRange_Errors(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("zero year", func(t *testing.T) {
		_, err := ComputeDateRange(model.PeriodYearly, intPtr(0), now)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("negative year", func(t *testing.T) {
		_, err := ComputeDateRange(model.PeriodYearly, intPtr(-3), now)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("unknown period", func(t *testing.T) {
		_, err := ComputeDateRange(model.PeriodType("daily"), nil, now)
		assert.ErrorIs(t, err, ErrInvalidPeriodType)
	})
}
