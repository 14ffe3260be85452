// Package state owns the three domain collections and keeps them in sync
// with the key-value store. All operations are synchronous and assume a
// single owner; there is no concurrent writer in this model.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"capstone-hub/internal/kvstore"
	"capstone-hub/internal/model"
	"capstone-hub/internal/seed"
)

// Persisted key per collection. Each key holds one JSON array.
const (
	keyTeams    = "teams"
	keyTasks    = "tasks"
	keyMeetings = "meetings"
)

// Manager is the domain state manager. It hydrates on session start,
// applies mutations in memory and re-persists all three collections after
// every mutation.
type Manager struct {
	store kvstore.Store
	log   *zap.SugaredLogger
	now   func() time.Time

	active   bool
	identity string

	teams    []model.Team
	tasks    []model.Task
	meetings []model.Meeting
}

func New(store kvstore.Store, log *zap.SugaredLogger) *Manager {
	return &Manager{store: store, log: log, now: time.Now}
}

// SetClock overrides the creation-timestamp source. Test hook.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// StartSession marks the session active for the given identity and
// hydrates the collections: the persisted set is adopted verbatim when all
// three keys are present, otherwise the full seed set replaces whatever is
// on disk. Calling it again without mutations is idempotent.
func (m *Manager) StartSession(ctx context.Context, identity string) error {
	m.identity = identity
	if err := m.hydrate(ctx); err != nil {
		// a partial adoption must not become mutable or persistable
		m.EndSession()
		return err
	}
	m.active = true
	return nil
}

// EndSession purges the in-memory collections immediately. The persisted
// state is left as-is for the next login.
func (m *Manager) EndSession() {
	m.active = false
	m.identity = ""
	m.teams = nil
	m.tasks = nil
	m.meetings = nil
}

// Identity returns the logged-in identity, empty when inactive.
func (m *Manager) Identity() string {
	return m.identity
}

// Active reports whether a session is in progress.
func (m *Manager) Active() bool {
	return m.active
}

func (m *Manager) hydrate(ctx context.Context) error {
	rawTeams, errTeams := m.store.Read(ctx, keyTeams)
	rawTasks, errTasks := m.store.Read(ctx, keyTasks)
	rawMeetings, errMeetings := m.store.Read(ctx, keyMeetings)

	// all-or-nothing: a single missing key discards the other two
	if errTeams != nil || errTasks != nil || errMeetings != nil {
		for _, err := range []error{errTeams, errTasks, errMeetings} {
			if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
				return err
			}
		}
		s := seed.Data(m.now())
		m.teams, m.tasks, m.meetings = s.Teams, s.Tasks, s.Meetings
		m.log.Infow("no persisted state, seeded fresh dataset",
			"teams", len(m.teams), "tasks", len(m.tasks), "meetings", len(m.meetings))
		return m.persist(ctx)
	}

	if err := json.Unmarshal(rawTeams, &m.teams); err != nil {
		return err
	}
	if err := json.Unmarshal(rawTasks, &m.tasks); err != nil {
		return err
	}
	if err := json.Unmarshal(rawMeetings, &m.meetings); err != nil {
		return err
	}
	m.log.Debugw("hydrated from store",
		"teams", len(m.teams), "tasks", len(m.tasks), "meetings", len(m.meetings))
	return nil
}

// persist re-serializes all three collections, not only the changed one.
// Consumers rely on every key being fresh on disk after any mutation.
func (m *Manager) persist(ctx context.Context) error {
	if err := m.writeJSON(ctx, keyTeams, m.teams); err != nil {
		return err
	}
	if err := m.writeJSON(ctx, keyTasks, m.tasks); err != nil {
		return err
	}
	return m.writeJSON(ctx, keyMeetings, m.meetings)
}

func (m *Manager) writeJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := m.store.Write(ctx, key, b); err != nil {
		m.log.Errorw("persist failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Teams returns the teams in insertion order.
func (m *Manager) Teams() []model.Team {
	out := make([]model.Team, len(m.teams))
	for i, t := range m.teams {
		out[i] = copyTeam(t)
	}
	return out
}

// Tasks returns the tasks in insertion order.
func (m *Manager) Tasks() []model.Task {
	return append([]model.Task(nil), m.tasks...)
}

// Meetings returns the meetings in insertion order.
func (m *Manager) Meetings() []model.Meeting {
	out := make([]model.Meeting, len(m.meetings))
	for i, mt := range m.meetings {
		out[i] = copyMeeting(mt)
	}
	return out
}

// cloneStrings detaches a nested string slice so callers and internal
// state never share a backing array.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func copyTeam(t model.Team) model.Team {
	t.Members = cloneStrings(t.Members)
	return t
}

func copyMeeting(mt model.Meeting) model.Meeting {
	mt.Attendees = cloneStrings(mt.Attendees)
	return mt
}

func (m *Manager) creator(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return m.identity
}
