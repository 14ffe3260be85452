package model

import "time"

// Session roles and the fixed identity attached to each. Identities are
// opaque strings stored on records as createdBy/leaderId; they are never
// looked up against a registry.
const (
	RoleManager    = "manager"
	RoleLeader     = "leader"
	RoleTeamLeader = "team-leader"
)

// Task status values. Callers pick the initial value; no transition order
// is enforced.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusReview     = "review"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Team is a capstone project team. Members are display names, not
// identities.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	LeaderID  string    `json:"leaderId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Task is a unit of work assigned to a team. AssignedTo may dangle: deleting
// a team does not cascade, consumers render the task as unassigned. Deadline
// is an ISO date or datetime string; only its calendar-date portion is ever
// compared.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AssignedTo  string    `json:"assignedTo"`
	CreatedBy   string    `json:"createdBy"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Deadline    string    `json:"deadline"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Meeting is a scheduled event on a single calendar day. Date is
// "2006-01-02", StartTime and EndTime are "15:04".
type Meeting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Attendees   []string `json:"attendees"`
	Location    string   `json:"location"`
	CreatedBy   string   `json:"createdBy"`
}

// IdentityFor maps a role to its fixed identity string.
func IdentityFor(role string) string {
	switch role {
	case RoleManager:
		return "manager1"
	case RoleLeader:
		return "leader1"
	case RoleTeamLeader:
		return "teamleader1"
	}
	return ""
}
