package postgres

import (
	"context"
	"fmt"
	"time"

	"codescanner/pkg/domain"
	"codescanner/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	capturesTable = "captures"
)

func (p *PgSQL) StoreCaptures(ctx context.Context, captures ...domain.Capture) ([]domain.Capture, error) {
	if len(captures) == 0 {
		return nil, nil
	}

	var result []PgCapture
	if err := p.q.Insert(capturesTable).
		Rows(domainCapturesToPg(captures)).
		Returning(&PgCapture{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store captures into pg: %w", err)
	}

	return pgCapturesToDomain(result), nil
}

// RecentCaptures returns captures ordered by captured_at DESC, id DESC and
// resumes strictly after the cursor in that order. One extra row is fetched
// to tell whether a next page exists.
func (p *PgSQL) RecentCaptures(ctx context.Context,
	sessionID domain.SessionID,
	cursor storage.CaptureCursor,
	limit uint) (storage.CapturePage, error) {
	var w []goqu.Expression
	if uuid.UUID(sessionID) != uuid.Nil {
		w = append(w, goqu.I("session_id").Eq(uuid.UUID(sessionID)))
	}
	if !cursor.IsZero() {
		// (captured_at, id) < (cursor.CapturedAt, cursor.ID)
		w = append(w, goqu.Or(
			goqu.I("captured_at").Lt(cursor.CapturedAt),
			goqu.And(
				goqu.I("captured_at").Eq(cursor.CapturedAt),
				goqu.I("id").Lt(uuid.UUID(cursor.ID)),
			),
		))
	}

	ds := p.q.From(capturesTable).
		Where(w...).
		Order(goqu.I("captured_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgCapture
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.CapturePage{}, fmt.Errorf("could not fetch recent captures from pg: %w", err)
	}

	var nextCursor *storage.CaptureCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.CaptureCursor{CapturedAt: last.CapturedAt, ID: domain.CaptureID(last.ID)}
		}
	}

	return storage.CapturePage{
		Captures:   pgCapturesToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) CaptureByID(ctx context.Context, id domain.CaptureID) (*domain.Capture, error) {
	var row PgCapture
	found, err := p.q.From(capturesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch capture by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	capture := row.ToDomain()

	return &capture, nil
}

func (p *PgSQL) DeleteCapturesBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := p.q.Delete(capturesTable).
		Where(goqu.I("captured_at").Lt(t)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete captures from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted captures: %w", err)
	}

	return n, nil
}
