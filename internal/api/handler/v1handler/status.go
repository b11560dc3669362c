package v1handler

import (
	"net/http"
	"strconv"

	"codescanner/pkg/domain"
	"codescanner/pkg/serrors"

	"github.com/go-faster/jx"
)

func encodeStatus(e *jx.Encoder, status domain.Status, oneTimeSearch bool) {
	e.ObjStart()
	e.FieldStart("state")
	e.Str(string(status.State))
	e.FieldStart("pending")
	e.Bool(status.Pending)
	e.FieldStart("locked")
	e.Bool(status.Locked)
	if status.Message != "" {
		e.FieldStart("message")
		e.Str(status.Message)
	}
	e.FieldStart("oneTimeSearch")
	e.Bool(oneTimeSearch)
	e.ObjEnd()
}

func (h *Handler) writeStatus(w http.ResponseWriter, code int) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encodeStatus(e, h.deps.Scanner.Status(), h.deps.Scanner.OneTimeSearch())

	writeJSON(w, code, e.Bytes())
}

// GetStatus returns the current scanner status.
func (h *Handler) GetStatus(w http.ResponseWriter, _ *http.Request) {
	h.writeStatus(w, http.StatusOK)
}

// PostReset re-arms scanning. With a "message" query parameter the NotFound
// state is shown first. The reset is applied asynchronously, so the returned
// status may not reflect it yet.
func (h *Handler) PostReset(w http.ResponseWriter, r *http.Request) {
	if message := r.URL.Query().Get("message"); message != "" {
		h.deps.Scanner.ResetWithError(message)
	} else {
		h.deps.Scanner.Reset()
	}

	h.writeStatus(w, http.StatusAccepted)
}

// PostMode switches one-time search on or off.
func (h *Handler) PostMode(w http.ResponseWriter, r *http.Request) {
	enabled, err := strconv.ParseBool(r.URL.Query().Get("oneTimeSearch"))
	if err != nil {
		h.writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid oneTimeSearch"))

		return
	}
	h.deps.Scanner.SetOneTimeSearch(enabled)

	h.writeStatus(w, http.StatusOK)
}

// PostTorch writes the torch mode.
func (h *Handler) PostTorch(w http.ResponseWriter, r *http.Request) {
	mode := domain.TorchMode(r.URL.Query().Get("mode"))
	if domain.ParseTorchMode(string(mode)) != mode {
		h.writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "invalid torch mode %q", mode))

		return
	}

	if err := h.deps.Scanner.SetTorchMode(r.Context(), mode); err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	h.writeStatus(w, http.StatusOK)
}
