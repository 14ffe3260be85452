package state

import (
	"context"

	"github.com/google/uuid"

	"capstone-hub/internal/model"
)

// TaskInput carries every caller-supplied task field. Status and priority
// are not validated here; that is the caller's job before invoking the core.
type TaskInput struct {
	Title       string `validate:"required"`
	Description string
	AssignedTo  string
	CreatedBy   string // session identity when empty
	Status      string `validate:"required,oneof=pending in-progress completed review"`
	Priority    string `validate:"required,oneof=low medium high"`
	Deadline    string `validate:"required,isodate"`
}

// TaskPatch is a shallow-merge update: nil fields keep their prior value.
type TaskPatch struct {
	Title       *string
	Description *string
	AssignedTo  *string
	Status      *string
	Priority    *string
	Deadline    *string
}

// AddTask appends a new task and re-persists.
func (m *Manager) AddTask(ctx context.Context, in TaskInput) (model.Task, error) {
	if !m.active {
		return model.Task{}, ErrNoSession
	}
	t := model.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   m.creator(in.CreatedBy),
		Status:      in.Status,
		Priority:    in.Priority,
		Deadline:    in.Deadline,
		CreatedAt:   m.now().UTC(),
	}
	m.tasks = append(m.tasks, t)
	m.log.Debugw("task added", "id", t.ID, "title", t.Title)
	return t, m.persist(ctx)
}

// UpdateTask merges the patch into the matching task in place. The id,
// CreatedBy and CreatedAt are immutable.
func (m *Manager) UpdateTask(ctx context.Context, id string, p TaskPatch) (model.Task, error) {
	if !m.active {
		return model.Task{}, ErrNoSession
	}
	for i := range m.tasks {
		if m.tasks[i].ID != id {
			continue
		}
		t := &m.tasks[i]
		if p.Title != nil {
			t.Title = *p.Title
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		if p.AssignedTo != nil {
			t.AssignedTo = *p.AssignedTo
		}
		if p.Status != nil {
			t.Status = *p.Status
		}
		if p.Priority != nil {
			t.Priority = *p.Priority
		}
		if p.Deadline != nil {
			t.Deadline = *p.Deadline
		}
		return *t, m.persist(ctx)
	}
	return model.Task{}, ErrTaskNotFound
}

// DeleteTask removes the matching task.
func (m *Manager) DeleteTask(ctx context.Context, id string) error {
	if !m.active {
		return ErrNoSession
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return m.persist(ctx)
		}
	}
	return ErrTaskNotFound
}
