package export

import (
	"time"

	"github.com/pietersz/kassabon/internal/entity"
)

const dateLayout = "2006-01-02"

// startOfWeek returns midnight of the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, 1-weekday)
}

// FilterByWeek keeps receipts dated within the week selected by offset,
// where offset 0 is the week containing now and -1 the week before.
// Weeks start on Monday. Receipts with unparseable dates are dropped.
func FilterByWeek(receipts []*entity.Receipt, offset int, now time.Time) []*entity.Receipt {
	weekStart := startOfWeek(now).AddDate(0, 0, offset*7)
	weekEnd := weekStart.AddDate(0, 0, 7)
	return filterRange(receipts, weekStart, weekEnd)
}

// FilterByMonth keeps receipts dated within the calendar month selected
// by offset, where offset 0 is the month containing now.
func FilterByMonth(receipts []*entity.Receipt, offset int, now time.Time) []*entity.Receipt {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, offset, 0)
	monthEnd := monthStart.AddDate(0, 1, 0)
	return filterRange(receipts, monthStart, monthEnd)
}

func filterRange(receipts []*entity.Receipt, start, end time.Time) []*entity.Receipt {
	out := make([]*entity.Receipt, 0, len(receipts))
	for _, rec := range receipts {
		d, err := time.ParseInLocation(dateLayout, rec.Date, start.Location())
		if err != nil {
			continue
		}
		if !d.Before(start) && d.Before(end) {
			out = append(out, rec)
		}
	}
	return out
}
