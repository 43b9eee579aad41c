package analytics

import (
	"time"

	"github.com/vadimbarashkov/linkstats/internal/entity"
)

// WindowDays is the length of the trailing daily series.
const WindowDays = 15

const dateLayout = "2006-01-02"

// DailySeries counts timestamps per calendar date for the WindowDays days
// ending on now's date, oldest first. Dates are computed in loc for both now
// and every timestamp; timestamps outside the window are ignored.
func DailySeries(now time.Time, loc *time.Location, timestamps []time.Time) []entity.DailyClicks {
	if loc == nil {
		loc = time.UTC
	}

	counts := make(map[string]int, WindowDays)
	for _, ts := range timestamps {
		counts[ts.In(loc).Format(dateLayout)]++
	}

	y, m, d := now.In(loc).Date()
	series := make([]entity.DailyClicks, 0, WindowDays)

	for i := WindowDays - 1; i >= 0; i-- {
		date := time.Date(y, m, d-i, 0, 0, 0, 0, loc).Format(dateLayout)
		series = append(series, entity.DailyClicks{
			Date:  date,
			Count: counts[date],
		})
	}

	return series
}
