package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"codescanner/pkg/domain"
	"codescanner/pkg/serrors"
	"codescanner/pkg/storage"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func encodeCapture(e *jx.Encoder, c domain.Capture) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(c.ID.String())
	e.FieldStart("sessionId")
	e.Str(c.SessionID.String())
	e.FieldStart("code")
	e.Str(c.Code)
	e.FieldStart("type")
	e.Str(c.Type)
	e.FieldStart("capturedAt")
	e.Str(c.CapturedAt.UTC().Format(time.RFC3339Nano))
	e.ObjEnd()
}

func (h *Handler) journalEnabled(w http.ResponseWriter, r *http.Request) bool {
	if h.deps.Captures == nil {
		h.writeError(r.Context(), w, serrors.With(serrors.ErrUnavailable, "capture journal is disabled"))

		return false
	}

	return true
}

// ListCaptures pages through journaled captures, newest first.
//
// Query parameters: limit (1..100), cursor (nextCursor of the previous page)
// and session ("current", a session UUID, or empty for all sessions).
func (h *Handler) ListCaptures(w http.ResponseWriter, r *http.Request) {
	if !h.journalEnabled(w, r) {
		return
	}
	ctx := r.Context()
	q := r.URL.Query()

	limit := uint(DefaultLimit)
	if s := q.Get("limit"); s != "" {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil || n == 0 || n > MaxLimit {
			h.writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit))

			return
		}
		limit = uint(n)
	}

	var cursor storage.CaptureCursor
	if s := q.Get("cursor"); s != "" {
		c, err := storage.ParseCaptureCursor(s)
		if err != nil {
			h.writeError(ctx, w, err)

			return
		}
		cursor = c
	}

	var sessionID domain.SessionID
	switch s := q.Get("session"); s {
	case "":
	case "current":
		sessionID = h.deps.SessionID
	default:
		id, err := uuid.Parse(s)
		if err != nil {
			h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid session"))

			return
		}
		sessionID = domain.SessionID(id)
	}

	page, err := h.deps.Captures.RecentCaptures(ctx, sessionID, cursor, limit)
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrInternal, err, "could not list captures"))

		return
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.ObjStart()
	e.FieldStart("captures")
	e.ArrStart()
	for _, c := range page.Captures {
		encodeCapture(e, c)
	}
	e.ArrEnd()
	e.FieldStart("nextCursor")
	if page.NextCursor != nil {
		e.Str(page.NextCursor.String())
	} else {
		e.Null()
	}
	e.ObjEnd()

	writeJSON(w, http.StatusOK, e.Bytes())
}

// GetCapture returns one journaled capture.
func (h *Handler) GetCapture(w http.ResponseWriter, r *http.Request) {
	if !h.journalEnabled(w, r) {
		return
	}
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid capture id"))

		return
	}

	capture, err := h.deps.Captures.CaptureByID(ctx, domain.CaptureID(id))
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrInternal, err, "could not fetch capture"))

		return
	}
	if capture == nil {
		h.writeError(ctx, w, serrors.With(serrors.ErrNotFound, "capture %s not found", id))

		return
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encodeCapture(e, *capture)

	writeJSON(w, http.StatusOK, e.Bytes())
}
