package schedule

import (
	"sort"
	"time"

	"capstone-hub/internal/model"
)

// startsAt combines a meeting's date and start time into one instant.
func startsAt(m model.Meeting) (time.Time, bool) {
	ts, err := time.Parse("2006-01-02T15:04", m.Date+"T"+m.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// UpcomingMeetings returns meetings whose (date, start time) is strictly in
// the future, ascending by that combination. Unparseable entries are
// skipped.
func UpcomingMeetings(meetings []model.Meeting, now time.Time) []model.Meeting {
	var out []model.Meeting
	for _, m := range meetings {
		if ts, ok := startsAt(m); ok && ts.After(now.UTC()) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := startsAt(out[i])
		b, _ := startsAt(out[j])
		return a.Before(b)
	})
	return out
}

// RecentTasks returns tasks newest-first by creation timestamp.
func RecentTasks(tasks []model.Task) []model.Task {
	out := append([]model.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Overdue reports whether the task's deadline day is strictly before
// today's calendar day. A deadline of exactly today is not overdue.
func Overdue(t model.Task, today time.Time) bool {
	dd := deadlineDay(t)
	if dd == "" {
		return false
	}
	// ISO day strings order lexically
	return dd < today.UTC().Format(dayFormat)
}

// StatusCounts aggregates tasks per status for the dashboard.
type StatusCounts struct {
	Pending    int
	InProgress int
	Completed  int
	Review     int
}

func CountByStatus(tasks []model.Task) StatusCounts {
	var c StatusCounts
	for _, t := range tasks {
		switch t.Status {
		case model.StatusPending:
			c.Pending++
		case model.StatusInProgress:
			c.InProgress++
		case model.StatusCompleted:
			c.Completed++
		case model.StatusReview:
			c.Review++
		}
	}
	return c
}
