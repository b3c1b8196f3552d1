package reportcache

import (
	"time"

	"donation-report-srv/internal/model"
)

// ComputeDateRange returns the reporting window for p as seen at now.
//
//   - weekly: the last complete Monday to Sunday week
//   - monthly: the last complete calendar month
//   - yearly: Jan 1 to Dec 31 23:59:59 for past years, Jan 1 to now for the current year
//
// A nil year for yearly reports means the current year. The end of weekly and
// monthly windows keeps the wall clock time of now.
func ComputeDateRange(p model.PeriodType, year *int, now time.Time) (model.DateRange, error) {
	var start, end time.Time
	loc := now.Location()

	switch p {
	case model.PeriodWeekly:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		end = now.AddDate(0, 0, -(daysSinceMonday + 1))
		start = midnight(end.AddDate(0, 0, -6))

	case model.PeriodMonthly:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), loc)
		end = firstOfMonth.AddDate(0, 0, -1)
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, loc)

	case model.PeriodYearly:
		y := now.Year()
		if year != nil {
			y = *year
		}
		if y <= 0 {
			return model.DateRange{}, ErrInvalidYear
		}
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		if y == now.Year() {
			end = now
		} else {
			end = time.Date(y, time.December, 31, 23, 59, 59, 0, loc)
		}

	default:
		return model.DateRange{}, ErrInvalidPeriodType
	}

	return model.DateRange{
		Start:    start,
		End:      end,
		CacheEnd: end.Format(model.DateLayout),
	}, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
