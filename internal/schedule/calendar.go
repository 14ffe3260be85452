// Package schedule holds the read-side helpers shared by every consumer of
// the domain state: calendar grids, day buckets and sorted projections.
// Everything here is a pure function of the collections and a reference
// instant.
package schedule

import (
	"time"

	"capstone-hub/internal/model"
)

const dayFormat = "2006-01-02"

// DayCell is one slot of a month grid. Leading cells before the first
// weekday of the month are blank placeholders.
type DayCell struct {
	Day   int
	Date  time.Time
	Blank bool
}

// MonthGrid lays out a month as a Sunday-start sequence of cells: one blank
// per weekday preceding day 1, then exactly the days of the month. No
// trailing padding.
func MonthGrid(year int, month time.Month) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{Blank: true})
	}
	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, DayCell{
			Day:  d,
			Date: time.Date(year, month, d, 0, 0, 0, 0, time.UTC),
		})
	}
	return cells
}

// WeekGrid returns the Sunday-start 7-day window containing ref, midnight
// normalized in ref's location.
func WeekGrid(ref time.Time) []time.Time {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	start = start.AddDate(0, 0, -int(start.Weekday()))

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// OnDay buckets meetings and tasks onto a calendar day by exact day-string
// comparison. A task deadline's time-of-day component is ignored.
func OnDay(meetings []model.Meeting, tasks []model.Task, day time.Time) ([]model.Meeting, []model.Task) {
	ds := day.Format(dayFormat)

	var ms []model.Meeting
	for _, m := range meetings {
		if m.Date == ds {
			ms = append(ms, m)
		}
	}
	var ts []model.Task
	for _, t := range tasks {
		if deadlineDay(t) == ds {
			ts = append(ts, t)
		}
	}
	return ms, ts
}

// deadlineDay reduces a task deadline to its "2006-01-02" portion.
// Deadlines arrive as ISO dates or datetimes; anything unparseable yields
// an empty string and never buckets.
func deadlineDay(t model.Task) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", dayFormat} {
		if ts, err := time.Parse(layout, t.Deadline); err == nil {
			return ts.UTC().Format(dayFormat)
		}
	}
	if len(t.Deadline) >= len(dayFormat) {
		return t.Deadline[:len(dayFormat)]
	}
	return ""
}
