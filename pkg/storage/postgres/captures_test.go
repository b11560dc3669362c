package postgres_test

import (
	"context"
	"testing"
	"time"

	"codescanner/pkg/domain"
	"codescanner/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newCapture(sessionID domain.SessionID, code string, at time.Time) domain.Capture {
	return domain.Capture{
		SessionID:  sessionID,
		Code:       code,
		Type:       string(domain.SymbologyEAN13),
		CapturedAt: at,
	}
}

func TestPgSQL_StoreCaptures(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)

	ctx := context.Background()
	sessionID := domain.NewSessionID()
	at := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("store single capture", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreCaptures(ctx, domain.Capture{
			SessionID:  sessionID,
			Code:       "012345678905",
			Type:       string(domain.SymbologyUPCA),
			CapturedAt: at,
		})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.NotEqual(t, uuid.Nil, uuid.UUID(res[0].ID))
		require.Equal(t, "012345678905", res[0].Code)
		require.Equal(t, "UPCA", res[0].Type)
		require.Equal(t, sessionID, res[0].SessionID)
		require.True(t, at.Equal(res[0].CapturedAt))
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store multiple captures", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreCaptures(ctx,
			newCapture(sessionID, "4006381333931", at),
			newCapture(sessionID, "9780201379624", at))
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store empty captures", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreCaptures(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_RecentCaptures(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	sessionA := domain.NewSessionID()
	sessionB := domain.NewSessionID()
	base := time.Now().UTC().Truncate(time.Millisecond)

	// five captures in A, one second apart, and one in B
	for i := range 5 {
		_, err := pgSQL.StoreCaptures(ctx, newCapture(sessionA, "A", base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}
	_, err := pgSQL.StoreCaptures(ctx, newCapture(sessionB, "B", base.Add(10*time.Second)))
	require.NoError(t, err)

	t.Run("pages through a session", func(t *testing.T) {
		page, err := pgSQL.RecentCaptures(ctx, sessionA, storage.CaptureCursor{}, 2)
		require.NoError(t, err)
		require.Len(t, page.Captures, 2)
		require.NotNil(t, page.NextCursor)
		require.True(t, page.Captures[0].CapturedAt.After(page.Captures[1].CapturedAt))

		seen := len(page.Captures)
		for page.NextCursor != nil {
			page, err = pgSQL.RecentCaptures(ctx, sessionA, *page.NextCursor, 2)
			require.NoError(t, err)
			seen += len(page.Captures)
		}
		require.Equal(t, 5, seen)
	})

	t.Run("zero session matches all", func(t *testing.T) {
		page, err := pgSQL.RecentCaptures(ctx, domain.SessionID{}, storage.CaptureCursor{}, 10)
		require.NoError(t, err)
		require.Len(t, page.Captures, 6)
		require.Nil(t, page.NextCursor)
		require.Equal(t, "B", page.Captures[0].Code)
	})
}

func TestPgSQL_RecentCaptures_SharedTimestamp(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	sessionID := domain.NewSessionID()
	same := time.Now().UTC().Truncate(time.Millisecond)
	stored, err := pgSQL.StoreCaptures(ctx,
		newCapture(sessionID, "C1", same),
		newCapture(sessionID, "C2", same),
		newCapture(sessionID, "C3", same),
		newCapture(sessionID, "C4", same),
		newCapture(sessionID, "C5", same.Add(-time.Second)))
	require.NoError(t, err)

	seen := map[domain.CaptureID]bool{}
	var cursor storage.CaptureCursor
	for {
		page, err := pgSQL.RecentCaptures(ctx, sessionID, cursor, 2)
		require.NoError(t, err)
		for _, c := range page.Captures {
			require.False(t, seen[c.ID], "capture %s listed twice", c.ID)
			seen[c.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}

	require.Len(t, seen, len(stored))
	for _, c := range stored {
		require.True(t, seen[c.ID], "capture %s (%s) skipped", c.Code, c.ID)
	}
}

func TestPgSQL_CaptureByID(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	stored, err := pgSQL.StoreCaptures(ctx, newCapture(domain.NewSessionID(), "4006381333931", time.Now()))
	require.NoError(t, err)

	got, err := pgSQL.CaptureByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored[0].ID, got.ID)
	require.Equal(t, "4006381333931", got.Code)

	missing, err := pgSQL.CaptureByID(ctx, domain.CaptureID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteCapturesBefore(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	sessionID := domain.NewSessionID()
	now := time.Now()
	_, err := pgSQL.StoreCaptures(ctx,
		newCapture(sessionID, "old", now.Add(-2*time.Hour)),
		newCapture(sessionID, "older", now.Add(-3*time.Hour)),
		newCapture(sessionID, "fresh", now))
	require.NoError(t, err)

	n, err := pgSQL.DeleteCapturesBefore(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	page, err := pgSQL.RecentCaptures(ctx, sessionID, storage.CaptureCursor{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Captures, 1)
	require.Equal(t, "fresh", page.Captures[0].Code)
}
