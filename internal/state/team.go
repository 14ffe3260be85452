package state

import (
	"context"

	"github.com/google/uuid"

	"capstone-hub/internal/model"
)

// TeamInput carries every caller-supplied team field. The id and creation
// timestamp are assigned here, never by the caller.
type TeamInput struct {
	Name     string   `validate:"required"`
	Members  []string `validate:"min=1,dive,notblank"`
	LeaderID string   // session identity when empty
}

// TeamPatch is a shallow-merge update: nil fields keep their prior value.
type TeamPatch struct {
	Name     *string
	Members  *[]string
	LeaderID *string
}

// AddTeam appends a new team and re-persists.
func (m *Manager) AddTeam(ctx context.Context, in TeamInput) (model.Team, error) {
	if !m.active {
		return model.Team{}, ErrNoSession
	}
	t := model.Team{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Members:   cloneStrings(in.Members),
		LeaderID:  m.creator(in.LeaderID),
		CreatedAt: m.now().UTC(),
	}
	m.teams = append(m.teams, t)
	m.log.Debugw("team added", "id", t.ID, "name", t.Name)
	return copyTeam(t), m.persist(ctx)
}

// UpdateTeam merges the patch into the matching team in place. The id and
// CreatedAt are immutable.
func (m *Manager) UpdateTeam(ctx context.Context, id string, p TeamPatch) (model.Team, error) {
	if !m.active {
		return model.Team{}, ErrNoSession
	}
	for i := range m.teams {
		if m.teams[i].ID != id {
			continue
		}
		t := &m.teams[i]
		if p.Name != nil {
			t.Name = *p.Name
		}
		if p.Members != nil {
			t.Members = cloneStrings(*p.Members)
		}
		if p.LeaderID != nil {
			t.LeaderID = *p.LeaderID
		}
		return copyTeam(*t), m.persist(ctx)
	}
	return model.Team{}, ErrTeamNotFound
}

// DeleteTeam removes the matching team. Tasks assigned to it are left
// untouched; their assignment dangles on purpose.
func (m *Manager) DeleteTeam(ctx context.Context, id string) error {
	if !m.active {
		return ErrNoSession
	}
	for i := range m.teams {
		if m.teams[i].ID == id {
			m.teams = append(m.teams[:i], m.teams[i+1:]...)
			return m.persist(ctx)
		}
	}
	return ErrTeamNotFound
}
