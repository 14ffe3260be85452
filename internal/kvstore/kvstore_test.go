package kvstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"capstone-hub/internal/kvstore"
	"capstone-hub/pkg/logger"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := kvstore.NewMemory()
	ctx := context.Background()

	_, err := s.Read(ctx, "teams")
	require.ErrorIs(t, err, kvstore.ErrNotFound)

	require.NoError(t, s.Write(ctx, "teams", []byte(`[]`)))
	got, err := s.Read(ctx, "teams")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), got)

	require.NoError(t, s.Write(ctx, "teams", []byte(`[{"id":"t1"}]`)))
	got, err = s.Read(ctx, "teams")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"t1"}]`), got)

	s.Delete("teams")
	_, err = s.Read(ctx, "teams")
	require.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestMemoryReadReturnsCopy(t *testing.T) {
	s := kvstore.NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "k", []byte("abc")))
	got, err := s.Read(ctx, "k")
	require.NoError(t, err)
	got[0] = 'z'

	again, err := s.Read(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}

func TestFileRoundTripAndReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := kvstore.OpenFile(dir)
	require.NoError(t, err)

	_, err = s.Read(ctx, "meetings")
	require.ErrorIs(t, err, kvstore.ErrNotFound)

	require.NoError(t, s.Write(ctx, "meetings", []byte(`[{"id":"m1"}]`)))
	s.Close()

	// values survive reopening, like a browser profile's storage
	s2, err := kvstore.OpenFile(dir)
	require.NoError(t, err)
	got, err := s2.Read(ctx, "meetings")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"m1"}]`), got)
}

func TestFileWriteLeavesNoTempBehind(t *testing.T) {
	dir := t.TempDir()
	s, err := kvstore.OpenFile(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), "tasks", []byte(`[]`)))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "tasks.json", entries[0].Name())
}

func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()

	s, err := kvstore.OpenPostgres(ctx, dsn, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.Write(ctx, "kvstore-test", []byte("v1")))
	require.NoError(t, s.Write(ctx, "kvstore-test", []byte("v2")))
	got, err := s.Read(ctx, "kvstore-test")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)
}
