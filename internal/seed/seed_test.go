package seed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"capstone-hub/internal/model"
	"capstone-hub/internal/seed"
)

func TestDataIsDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	a := seed.Data(now)
	b := seed.Data(now)
	require.Equal(t, a, b)
}

func TestDataShape(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	s := seed.Data(now)

	require.Len(t, s.Teams, 3)
	require.Len(t, s.Tasks, 5)
	require.Len(t, s.Meetings, 3)

	require.Equal(t, "t1", s.Teams[0].ID)
	require.Equal(t, "Web Development Team", s.Teams[0].Name)
	require.Equal(t, now.AddDate(0, 0, -30), s.Teams[0].CreatedAt)

	require.Equal(t, "task3", s.Tasks[2].ID)
	require.Equal(t, model.StatusPending, s.Tasks[2].Status)
	require.Equal(t, "t1", s.Tasks[2].AssignedTo)

	require.Equal(t, "meeting2", s.Meetings[1].ID)
	require.Equal(t, now.AddDate(0, 0, 3).Format("2006-01-02"), s.Meetings[1].Date)
	require.Equal(t, "14:00", s.Meetings[1].StartTime)
	require.Equal(t, "15:00", s.Meetings[1].EndTime)
}

func TestEveryRecordHasRequiredFields(t *testing.T) {
	s := seed.Data(time.Now())

	for _, tm := range s.Teams {
		require.NotEmpty(t, tm.ID)
		require.NotEmpty(t, tm.Name)
		require.NotEmpty(t, tm.Members)
		require.NotEmpty(t, tm.LeaderID)
	}
	for _, tk := range s.Tasks {
		require.NotEmpty(t, tk.ID)
		require.NotEmpty(t, tk.Title)
		require.NotEmpty(t, tk.Status)
		require.NotEmpty(t, tk.Priority)
		require.NotEmpty(t, tk.Deadline)
	}
	for _, m := range s.Meetings {
		require.NotEmpty(t, m.ID)
		require.NotEmpty(t, m.Title)
		require.NotEmpty(t, m.Attendees)
		require.NotEmpty(t, m.Location)
		require.Less(t, m.StartTime, m.EndTime)
	}
}
