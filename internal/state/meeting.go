package state

import (
	"context"

	"github.com/google/uuid"

	"capstone-hub/internal/model"
)

// MeetingInput carries every caller-supplied meeting field. Meetings have
// no creation timestamp.
type MeetingInput struct {
	Title       string `validate:"required"`
	Description string
	Date        string   `validate:"required,datetime=2006-01-02"`
	StartTime   string   `validate:"required,datetime=15:04"`
	EndTime     string   `validate:"required,datetime=15:04"`
	Attendees   []string `validate:"min=1,dive,notblank"`
	Location    string   `validate:"required"`
	CreatedBy   string   // session identity when empty
}

// MeetingPatch is a shallow-merge update: nil fields keep their prior value.
type MeetingPatch struct {
	Title       *string
	Description *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Attendees   *[]string
	Location    *string
}

// AddMeeting appends a new meeting and re-persists.
func (m *Manager) AddMeeting(ctx context.Context, in MeetingInput) (model.Meeting, error) {
	if !m.active {
		return model.Meeting{}, ErrNoSession
	}
	mt := model.Meeting{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Attendees:   cloneStrings(in.Attendees),
		Location:    in.Location,
		CreatedBy:   m.creator(in.CreatedBy),
	}
	m.meetings = append(m.meetings, mt)
	m.log.Debugw("meeting added", "id", mt.ID, "title", mt.Title, "date", mt.Date)
	return copyMeeting(mt), m.persist(ctx)
}

// UpdateMeeting merges the patch into the matching meeting in place.
func (m *Manager) UpdateMeeting(ctx context.Context, id string, p MeetingPatch) (model.Meeting, error) {
	if !m.active {
		return model.Meeting{}, ErrNoSession
	}
	for i := range m.meetings {
		if m.meetings[i].ID != id {
			continue
		}
		mt := &m.meetings[i]
		if p.Title != nil {
			mt.Title = *p.Title
		}
		if p.Description != nil {
			mt.Description = *p.Description
		}
		if p.Date != nil {
			mt.Date = *p.Date
		}
		if p.StartTime != nil {
			mt.StartTime = *p.StartTime
		}
		if p.EndTime != nil {
			mt.EndTime = *p.EndTime
		}
		if p.Attendees != nil {
			mt.Attendees = cloneStrings(*p.Attendees)
		}
		if p.Location != nil {
			mt.Location = *p.Location
		}
		return copyMeeting(*mt), m.persist(ctx)
	}
	return model.Meeting{}, ErrMeetingNotFound
}

// DeleteMeeting removes the matching meeting.
func (m *Manager) DeleteMeeting(ctx context.Context, id string) error {
	if !m.active {
		return ErrNoSession
	}
	for i := range m.meetings {
		if m.meetings[i].ID == id {
			m.meetings = append(m.meetings[:i], m.meetings[i+1:]...)
			return m.persist(ctx)
		}
	}
	return ErrMeetingNotFound
}
