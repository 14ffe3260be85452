// Package seed produces the deterministic starting dataset used when no
// persisted state exists.
package seed

import (
	"time"

	"capstone-hub/internal/model"
)

// Set is the complete replacement dataset handed to the state manager.
type Set struct {
	Teams    []model.Team
	Tasks    []model.Task
	Meetings []model.Meeting
}

// Data returns 3 teams, 5 tasks and 3 meetings with fixed identifiers and
// day offsets relative to now. The same instant always yields the same set,
// which keeps test fixtures reproducible.
func Data(now time.Time) Set {
	now = now.UTC()
	days := func(n int) time.Time { return now.AddDate(0, 0, n) }
	deadline := func(n int) string { return days(n).Format(time.RFC3339) }
	date := func(n int) string { return days(n).Format("2006-01-02") }

	teams := []model.Team{
		{
			ID:        "t1",
			Name:      "Web Development Team",
			Members:   []string{"Student 1", "Student 2", "Student 3"},
			LeaderID:  "leader1",
			CreatedAt: days(-30),
		},
		{
			ID:        "t2",
			Name:      "Mobile App Team",
			Members:   []string{"Student 4", "Student 5", "Student 6"},
			LeaderID:  "leader2",
			CreatedAt: days(-15),
		},
		{
			ID:        "t3",
			Name:      "UI/UX Design Team",
			Members:   []string{"Student 7", "Student 8"},
			LeaderID:  "leader3",
			CreatedAt: days(-10),
		},
	}

	tasks := []model.Task{
		{
			ID:          "task1",
			Title:       "Create Homepage Wireframe",
			Description: "Design a wireframe for the project homepage with clear navigation and user flow.",
			AssignedTo:  "t3",
			CreatedBy:   "manager1",
			Status:      model.StatusCompleted,
			Priority:    model.PriorityHigh,
			Deadline:    deadline(3),
			CreatedAt:   days(-7),
		},
		{
			ID:          "task2",
			Title:       "Implement User Authentication",
			Description: "Create user login and registration forms with validation.",
			AssignedTo:  "t1",
			CreatedBy:   "manager1",
			Status:      model.StatusInProgress,
			Priority:    model.PriorityHigh,
			Deadline:    deadline(5),
			CreatedAt:   days(-5),
		},
		{
			ID:          "task3",
			Title:       "Database Schema Design",
			Description: "Design the database schema for the project with proper relationships.",
			AssignedTo:  "t1",
			CreatedBy:   "leader1",
			Status:      model.StatusPending,
			Priority:    model.PriorityMedium,
			Deadline:    deadline(7),
			CreatedAt:   days(-3),
		},
		{
			ID:          "task4",
			Title:       "Mobile App Prototype",
			Description: "Create a clickable prototype of the mobile app using Figma.",
			AssignedTo:  "t2",
			CreatedBy:   "leader2",
			Status:      model.StatusReview,
			Priority:    model.PriorityMedium,
			Deadline:    deadline(2),
			CreatedAt:   days(-8),
		},
		{
			ID:          "task5",
			Title:       "API Documentation",
			Description: "Document all API endpoints with examples and response formats.",
			AssignedTo:  "t1",
			CreatedBy:   "manager1",
			Status:      model.StatusPending,
			Priority:    model.PriorityLow,
			Deadline:    deadline(10),
			CreatedAt:   days(-2),
		},
	}

	meetings := []model.Meeting{
		{
			ID:          "meeting1",
			Title:       "Weekly Project Review",
			Description: "Review progress of all teams and discuss blockers.",
			Date:        date(1),
			StartTime:   "09:00",
			EndTime:     "10:30",
			Attendees:   []string{"manager1", "leader1", "leader2", "leader3"},
			Location:    "Conference Room A",
			CreatedBy:   "manager1",
		},
		{
			ID:          "meeting2",
			Title:       "Frontend Development Planning",
			Description: "Plan the next sprint for the frontend team.",
			Date:        date(3),
			StartTime:   "14:00",
			EndTime:     "15:00",
			Attendees:   []string{"leader1", "teamleader1"},
			Location:    "Meeting Room B",
			CreatedBy:   "leader1",
		},
		{
			ID:          "meeting3",
			Title:       "Design Review",
			Description: "Review UI designs and collect feedback.",
			Date:        date(2),
			StartTime:   "11:00",
			EndTime:     "12:00",
			Attendees:   []string{"leader3", "manager1"},
			Location:    "Online (Zoom)",
			CreatedBy:   "leader3",
		},
	}

	return Set{Teams: teams, Tasks: tasks, Meetings: meetings}
}
