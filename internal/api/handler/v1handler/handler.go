// Package v1handler implements the v1 debug API of the scanner: status and
// control of the running controller and read access to the capture journal.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"codescanner/pkg/domain"
	"codescanner/pkg/logger"
	"codescanner/pkg/serrors"
	"codescanner/pkg/storage"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	Scanner Scanner
	// Captures is nil when the journal is disabled.
	Captures storage.CaptureStorage
	// SessionID is the journal session of the running scanner.
	SessionID domain.SessionID
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux below prefix (e.g. "/v1").
func (h *Handler) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/status", h.GetStatus)
	mux.HandleFunc("POST "+prefix+"/reset", h.PostReset)
	mux.HandleFunc("POST "+prefix+"/mode", h.PostMode)
	mux.HandleFunc("POST "+prefix+"/torch", h.PostTorch)
	mux.HandleFunc("GET "+prefix+"/captures", h.ListCaptures)
	mux.HandleFunc("GET "+prefix+"/captures/{id}", h.GetCapture)
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrUnavailable), errors.Is(err, serrors.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	kind := "INTERNAL"
	if k := serrors.KindOf(err); k != nil {
		kind = k.Error()
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.ObjStart()
	e.FieldStart("error")
	e.ObjStart()
	e.FieldStart("kind")
	e.Str(kind)
	e.FieldStart("message")
	e.Str(err.Error())
	e.ObjEnd()
	e.ObjEnd()

	writeJSON(w, code, e.Bytes())
}

func writeJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
