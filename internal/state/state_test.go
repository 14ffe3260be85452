package state_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"capstone-hub/internal/kvstore"
	"capstone-hub/internal/model"
	"capstone-hub/internal/state"
	"capstone-hub/pkg/logger"
)

var fixedNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*state.Manager, *kvstore.Memory) {
	t.Helper()
	store := kvstore.NewMemory()
	mgr := state.New(store, logger.NewNop())
	mgr.SetClock(func() time.Time { return fixedNow })
	require.NoError(t, mgr.StartSession(context.Background(), "manager1"))
	return mgr, store
}

func TestStartSessionSeedsWhenEmpty(t *testing.T) {
	mgr, store := setup(t)

	require.Len(t, mgr.Teams(), 3)
	require.Len(t, mgr.Tasks(), 5)
	require.Len(t, mgr.Meetings(), 3)

	// the seed set is persisted immediately
	for _, key := range []string{"teams", "tasks", "meetings"} {
		_, err := store.Read(context.Background(), key)
		require.NoError(t, err, key)
	}
}

func TestAddTeamThenLookup(t *testing.T) {
	mgr, _ := setup(t)

	added, err := mgr.AddTeam(context.Background(), state.TeamInput{
		Name:    "Data Team",
		Members: []string{"Dana", "Eli"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	require.Equal(t, fixedNow, added.CreatedAt)
	require.Equal(t, "manager1", added.LeaderID) // session identity default

	teams := mgr.Teams()
	got := teams[len(teams)-1]
	require.Equal(t, added, got)
}

func TestGeneratedIDsAreDistinct(t *testing.T) {
	mgr, _ := setup(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		tk, err := mgr.AddTask(context.Background(), state.TaskInput{
			Title:    fmt.Sprintf("task %d", i),
			Status:   model.StatusPending,
			Priority: model.PriorityLow,
			Deadline: "2026-09-01",
		})
		require.NoError(t, err)
		require.False(t, seen[tk.ID], "duplicate id %s", tk.ID)
		seen[tk.ID] = true
	}
}

func TestUpdatePreservesOmittedFields(t *testing.T) {
	mgr, _ := setup(t)

	var before model.Task
	for _, tk := range mgr.Tasks() {
		if tk.ID == "task3" {
			before = tk
		}
	}
	require.Equal(t, model.StatusPending, before.Status)

	status := model.StatusCompleted
	after, err := mgr.UpdateTask(context.Background(), "task3", state.TaskPatch{Status: &status})
	require.NoError(t, err)

	require.Equal(t, model.StatusCompleted, after.Status)
	require.Equal(t, before.ID, after.ID)
	require.Equal(t, before.Title, after.Title)
	require.Equal(t, before.Description, after.Description)
	require.Equal(t, before.AssignedTo, after.AssignedTo)
	require.Equal(t, before.CreatedBy, after.CreatedBy)
	require.Equal(t, before.Priority, after.Priority)
	require.Equal(t, before.Deadline, after.Deadline)
	require.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestUpdateKeepsInsertionOrder(t *testing.T) {
	mgr, _ := setup(t)

	name := "Renamed"
	_, err := mgr.UpdateTeam(context.Background(), "t2", state.TeamPatch{Name: &name})
	require.NoError(t, err)

	var ids []string
	for _, tm := range mgr.Teams() {
		ids = append(ids, tm.ID)
	}
	require.Equal(t, []string{"t1", "t2", "t3"}, ids)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	mgr, _ := setup(t)

	require.NoError(t, mgr.DeleteTeam(context.Background(), "t2"))

	var ids []string
	for _, tm := range mgr.Teams() {
		ids = append(ids, tm.ID)
	}
	require.Equal(t, []string{"t1", "t3"}, ids)

	// second delete finds nothing and changes nothing
	err := mgr.DeleteTeam(context.Background(), "t2")
	require.ErrorIs(t, err, state.ErrTeamNotFound)
	require.Len(t, mgr.Teams(), 2)
}

func TestUpdateUnknownIDReportsNotFound(t *testing.T) {
	mgr, _ := setup(t)

	title := "x"
	_, err := mgr.UpdateTask(context.Background(), "nope", state.TaskPatch{Title: &title})
	require.ErrorIs(t, err, state.ErrTaskNotFound)

	_, err = mgr.UpdateMeeting(context.Background(), "nope", state.MeetingPatch{Title: &title})
	require.ErrorIs(t, err, state.ErrMeetingNotFound)

	require.Len(t, mgr.Tasks(), 5)
	require.Len(t, mgr.Meetings(), 3)
}

func TestMutationsRequireSession(t *testing.T) {
	store := kvstore.NewMemory()
	mgr := state.New(store, logger.NewNop())

	_, err := mgr.AddTeam(context.Background(), state.TeamInput{Name: "X", Members: []string{"a"}})
	require.ErrorIs(t, err, state.ErrNoSession)
	require.ErrorIs(t, mgr.DeleteMeeting(context.Background(), "meeting1"), state.ErrNoSession)
}

func TestEndSessionPurgesState(t *testing.T) {
	mgr, _ := setup(t)

	mgr.EndSession()
	require.False(t, mgr.Active())
	require.Empty(t, mgr.Identity())
	require.Empty(t, mgr.Teams())
	require.Empty(t, mgr.Tasks())
	require.Empty(t, mgr.Meetings())
}

func TestHydrationIsIdempotent(t *testing.T) {
	mgr, _ := setup(t)

	// both hydrations below read the persisted seed set
	mgr.EndSession()
	require.NoError(t, mgr.StartSession(context.Background(), "manager1"))
	teamsA, tasksA, meetingsA := mgr.Teams(), mgr.Tasks(), mgr.Meetings()

	mgr.EndSession()
	require.NoError(t, mgr.StartSession(context.Background(), "manager1"))
	require.Equal(t, teamsA, mgr.Teams())
	require.Equal(t, tasksA, mgr.Tasks())
	require.Equal(t, meetingsA, mgr.Meetings())
}

func TestFailedHydrationLeavesNoSession(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Write(ctx, "teams", []byte(`{not json`)))
	require.NoError(t, store.Write(ctx, "tasks", []byte(`[]`)))
	require.NoError(t, store.Write(ctx, "meetings", []byte(`[]`)))

	mgr := state.New(store, logger.NewNop())
	require.Error(t, mgr.StartSession(ctx, "manager1"))

	// a corrupt key must not leave a half-adopted, mutable session behind
	require.False(t, mgr.Active())
	require.Empty(t, mgr.Identity())
	require.Empty(t, mgr.Teams())
	require.Empty(t, mgr.Tasks())
	require.Empty(t, mgr.Meetings())

	_, err := mgr.AddTeam(ctx, state.TeamInput{Name: "X", Members: []string{"a"}})
	require.ErrorIs(t, err, state.ErrNoSession)
}

func TestReturnedSlicesAreDetached(t *testing.T) {
	mgr, _ := setup(t)
	ctx := context.Background()

	added, err := mgr.AddTeam(ctx, state.TeamInput{Name: "Ops", Members: []string{"Ann", "Ben"}})
	require.NoError(t, err)

	// scribbling on a returned record must not reach the stored one
	added.Members[0] = "scribbled"
	mgr.Teams()[0].Members[0] = "scribbled"
	stored, err := mgr.UpdateTeam(ctx, added.ID, state.TeamPatch{})
	require.NoError(t, err)
	require.Equal(t, []string{"Ann", "Ben"}, stored.Members)

	// nor must later edits to a caller-owned patch slice
	members := []string{"Cara"}
	_, err = mgr.UpdateTeam(ctx, added.ID, state.TeamPatch{Members: &members})
	require.NoError(t, err)
	members[0] = "scribbled"

	attendees := []string{"Dan"}
	updated, err := mgr.UpdateMeeting(ctx, "meeting1", state.MeetingPatch{Attendees: &attendees})
	require.NoError(t, err)
	updated.Attendees[0] = "scribbled"
	attendees[0] = "scribbled"

	for _, tm := range mgr.Teams() {
		if tm.ID == added.ID {
			require.Equal(t, []string{"Cara"}, tm.Members)
		}
	}
	for _, mt := range mgr.Meetings() {
		if mt.ID == "meeting1" {
			require.Equal(t, []string{"Dan"}, mt.Attendees)
		}
	}
}

func TestSeedFallbackIsAllOrNothing(t *testing.T) {
	mgr, store := setup(t)

	_, err := mgr.AddTeam(context.Background(), state.TeamInput{Name: "Extra", Members: []string{"a"}})
	require.NoError(t, err)
	require.Len(t, mgr.Teams(), 4)

	// one missing key discards the surviving two on the next hydration
	store.Delete("tasks")
	mgr.EndSession()
	require.NoError(t, mgr.StartSession(context.Background(), "manager1"))

	require.Len(t, mgr.Teams(), 3, "mutated teams must be replaced by the seed set")
	require.Len(t, mgr.Tasks(), 5)
	require.Len(t, mgr.Meetings(), 3)
}

type failingStore struct {
	*kvstore.Memory
	failKey string
}

func (f *failingStore) Write(ctx context.Context, key string, value []byte) error {
	if key == f.failKey {
		return errors.New("quota exceeded")
	}
	return f.Memory.Write(ctx, key, value)
}

func TestPersistFailurePropagates(t *testing.T) {
	store := &failingStore{Memory: kvstore.NewMemory()}
	mgr := state.New(store, logger.NewNop())
	mgr.SetClock(func() time.Time { return fixedNow })
	require.NoError(t, mgr.StartSession(context.Background(), "manager1"))

	store.failKey = "meetings"
	_, err := mgr.AddTeam(context.Background(), state.TeamInput{Name: "X", Members: []string{"a"}})
	require.Error(t, err)

	// the in-memory mutation stays; disk catches up on the next write
	require.Len(t, mgr.Teams(), 4)
	store.failKey = ""
	_, err = mgr.AddTask(context.Background(), state.TaskInput{
		Title: "y", Status: model.StatusPending, Priority: model.PriorityLow, Deadline: "2026-09-01",
	})
	require.NoError(t, err)
}

func TestEndToEndScenario(t *testing.T) {
	mgr, _ := setup(t)
	ctx := context.Background()

	added, err := mgr.AddTeam(ctx, state.TeamInput{Name: "QA Team", Members: []string{"Alice", "Bob"}})
	require.NoError(t, err)
	require.Len(t, mgr.Teams(), 4)
	require.NotEmpty(t, added.ID)
	require.False(t, added.CreatedAt.Before(fixedNow))

	require.NoError(t, mgr.DeleteTeam(ctx, "t2"))
	teams := mgr.Teams()
	require.Len(t, teams, 3)
	for _, tm := range teams {
		require.NotEqual(t, "t2", tm.ID)
	}

	status := model.StatusCompleted
	updated, err := mgr.UpdateTask(ctx, "task3", state.TaskPatch{Status: &status})
	require.NoError(t, err)
	require.Equal(t, model.StatusCompleted, updated.Status)
	require.Equal(t, "Database Schema Design", updated.Title)
}
