package postgres

import (
	"time"

	"codescanner/pkg/domain"

	"github.com/google/uuid"
)

type PgCapture struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	SessionID uuid.UUID `db:"session_id"`

	Code string `db:"code"`
	Type string `db:"type"`

	CapturedAt time.Time `db:"captured_at"`
	CreatedAt  time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCapture) ToDomain() domain.Capture {
	return domain.Capture{
		ID:         domain.CaptureID(p.ID),
		SessionID:  domain.SessionID(p.SessionID),
		Code:       p.Code,
		Type:       p.Type,
		CapturedAt: p.CapturedAt,
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgCapture) FromDomain(capture domain.Capture) {
	*p = PgCapture{
		ID:         uuid.UUID(capture.ID),
		SessionID:  uuid.UUID(capture.SessionID),
		Code:       capture.Code,
		Type:       capture.Type,
		CapturedAt: capture.CapturedAt,
		CreatedAt:  capture.CreatedAt,
	}
}

func domainCapturesToPg(captures []domain.Capture) []PgCapture {
	out := make([]PgCapture, len(captures))
	for i := range out {
		out[i].FromDomain(captures[i])
	}

	return out
}

func pgCapturesToDomain(captures []PgCapture) []domain.Capture {
	out := make([]domain.Capture, 0, len(captures))
	for _, capture := range captures {
		out = append(out, capture.ToDomain())
	}

	return out
}
