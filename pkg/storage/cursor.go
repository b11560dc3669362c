package storage

import (
	"strings"
	"time"

	"codescanner/pkg/domain"
	"codescanner/pkg/serrors"

	"github.com/google/uuid"
)

// CaptureCursor is the position of the last capture of a page. Captures are
// ordered by (CapturedAt, ID) descending, so the pair stays unambiguous when
// several captures share a timestamp.
type CaptureCursor struct {
	CapturedAt time.Time
	ID         domain.CaptureID
}

// IsZero reports whether the cursor points at the start of the listing.
func (c CaptureCursor) IsZero() bool {
	return c.CapturedAt.IsZero()
}

// String encodes the cursor as "<RFC 3339 time>_<capture id>".
func (c CaptureCursor) String() string {
	return c.CapturedAt.UTC().Format(time.RFC3339Nano) + "_" + c.ID.String()
}

// ParseCaptureCursor decodes a cursor produced by CaptureCursor.String.
func ParseCaptureCursor(s string) (CaptureCursor, error) {
	at, id, ok := strings.Cut(s, "_")
	if !ok {
		return CaptureCursor{}, serrors.With(serrors.ErrBadRequest, "cursor %q must be <time>_<id>", s)
	}

	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return CaptureCursor{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor time")
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return CaptureCursor{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor id")
	}

	return CaptureCursor{CapturedAt: t, ID: domain.CaptureID(u)}, nil
}
