package v1handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codescanner/internal/api/handler/v1handler"
	mockv1handler "codescanner/internal/api/handler/v1handler/mock"
	"codescanner/pkg/domain"
	"codescanner/pkg/serrors"
	"codescanner/pkg/storage"
	mockstorage "codescanner/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	scanner  *mockv1handler.MockScanner
	captures *mockstorage.MockCaptureStorage
	session  domain.SessionID
	mux      *http.ServeMux
}

func newFixture(t *testing.T, journal bool) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		scanner: mockv1handler.NewMockScanner(ctrl),
		session: domain.NewSessionID(),
		mux:     http.NewServeMux(),
	}
	deps := v1handler.Deps{Scanner: f.scanner, SessionID: f.session}
	if journal {
		f.captures = mockstorage.NewMockCaptureStorage(ctrl)
		deps.Captures = f.captures
	}
	v1handler.New(deps).Register(f.mux, "/v1")

	return f
}

func (f *fixture) do(t *testing.T, method, target string) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}

	return rec.Code, body
}

func (f *fixture) expectStatus(status domain.Status, oneTimeSearch bool) {
	f.scanner.EXPECT().Status().Return(status)
	f.scanner.EXPECT().OneTimeSearch().Return(oneTimeSearch)
}

func errorKind(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	kind, _ := e["kind"].(string)

	return kind
}

func TestGetStatus(t *testing.T) {
	f := newFixture(t, false)
	f.expectStatus(domain.Status{State: domain.ScanStateProcessing, Locked: true}, true)

	code, body := f.do(t, http.MethodGet, "/v1/status")

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, map[string]any{
		"state":         "PROCESSING",
		"pending":       false,
		"locked":        true,
		"oneTimeSearch": true,
	}, body)
}

func TestPostReset(t *testing.T) {
	t.Run("plain reset", func(t *testing.T) {
		f := newFixture(t, false)
		f.scanner.EXPECT().Reset()
		f.expectStatus(domain.Status{State: domain.ScanStateScanning}, true)

		code, _ := f.do(t, http.MethodPost, "/v1/reset")
		require.Equal(t, http.StatusAccepted, code)
	})

	t.Run("reset with error message", func(t *testing.T) {
		f := newFixture(t, false)
		f.scanner.EXPECT().ResetWithError("No product found")
		f.expectStatus(domain.Status{State: domain.ScanStateNotFound, Message: "No product found"}, true)

		code, body := f.do(t, http.MethodPost, "/v1/reset?message=No+product+found")
		require.Equal(t, http.StatusAccepted, code)
		require.Equal(t, "No product found", body["message"])
	})

	t.Run("wrong method", func(t *testing.T) {
		f := newFixture(t, false)

		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reset", nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestPostMode(t *testing.T) {
	f := newFixture(t, false)
	f.scanner.EXPECT().SetOneTimeSearch(false)
	f.expectStatus(domain.Status{State: domain.ScanStateScanning}, false)

	code, body := f.do(t, http.MethodPost, "/v1/mode?oneTimeSearch=false")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, false, body["oneTimeSearch"])

	code, body = f.do(t, http.MethodPost, "/v1/mode?oneTimeSearch=maybe")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "BAD_REQUEST", errorKind(body))
}

func TestPostTorch(t *testing.T) {
	f := newFixture(t, false)
	f.scanner.EXPECT().SetTorchMode(gomock.Any(), domain.TorchModeOn).Return(nil)
	f.expectStatus(domain.Status{State: domain.ScanStateScanning}, true)

	code, _ := f.do(t, http.MethodPost, "/v1/torch?mode=ON")
	require.Equal(t, http.StatusOK, code)

	code, body := f.do(t, http.MethodPost, "/v1/torch?mode=STROBE")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "BAD_REQUEST", errorKind(body))

	f.scanner.EXPECT().SetTorchMode(gomock.Any(), domain.TorchModeAuto).
		Return(serrors.Wrap(serrors.ErrUnavailable, errors.New("no torch"), "could not set torch mode"))
	code, body = f.do(t, http.MethodPost, "/v1/torch?mode=AUTO")
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Equal(t, "UNAVAILABLE", errorKind(body))
}

func TestListCaptures(t *testing.T) {
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	capture := domain.Capture{
		ID:         domain.CaptureID(uuid.New()),
		Code:       "012345678905",
		Type:       "UPCA",
		CapturedAt: at,
	}
	cursor := storage.CaptureCursor{CapturedAt: at, ID: capture.ID}
	next := storage.CaptureCursor{CapturedAt: at.Add(-time.Minute), ID: domain.CaptureID(uuid.New())}

	t.Run("journal disabled", func(t *testing.T) {
		f := newFixture(t, false)

		code, body := f.do(t, http.MethodGet, "/v1/captures")
		require.Equal(t, http.StatusServiceUnavailable, code)
		require.Equal(t, "UNAVAILABLE", errorKind(body))
	})

	t.Run("current session page", func(t *testing.T) {
		f := newFixture(t, true)
		capture.SessionID = f.session
		f.captures.EXPECT().
			RecentCaptures(gomock.Any(), f.session, cursor, uint(2)).
			Return(storage.CapturePage{Captures: []domain.Capture{capture}, NextCursor: &next}, nil)

		code, body := f.do(t, http.MethodGet,
			"/v1/captures?session=current&limit=2&cursor="+cursor.String())
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, next.String(), body["nextCursor"])

		captures, ok := body["captures"].([]any)
		require.True(t, ok)
		require.Len(t, captures, 1)
		require.Equal(t, map[string]any{
			"id":         capture.ID.String(),
			"sessionId":  f.session.String(),
			"code":       "012345678905",
			"type":       "UPCA",
			"capturedAt": at.Format(time.RFC3339Nano),
		}, captures[0])
	})

	t.Run("defaults", func(t *testing.T) {
		f := newFixture(t, true)
		f.captures.EXPECT().
			RecentCaptures(gomock.Any(), domain.SessionID{}, storage.CaptureCursor{}, uint(v1handler.DefaultLimit)).
			Return(storage.CapturePage{}, nil)

		code, body := f.do(t, http.MethodGet, "/v1/captures")
		require.Equal(t, http.StatusOK, code)
		require.Empty(t, body["captures"])
		require.Nil(t, body["nextCursor"])
	})

	t.Run("bad parameters", func(t *testing.T) {
		f := newFixture(t, true)

		for _, target := range []string{
			"/v1/captures?limit=0",
			"/v1/captures?limit=1000",
			"/v1/captures?cursor=yesterday",
			"/v1/captures?cursor=" + at.Format(time.RFC3339Nano),
			"/v1/captures?session=abc",
		} {
			code, body := f.do(t, http.MethodGet, target)
			require.Equal(t, http.StatusBadRequest, code, target)
			require.Equal(t, "BAD_REQUEST", errorKind(body), target)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t, true)
		f.captures.EXPECT().RecentCaptures(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(storage.CapturePage{}, errors.New("connection reset"))

		code, body := f.do(t, http.MethodGet, "/v1/captures")
		require.Equal(t, http.StatusInternalServerError, code)
		require.Equal(t, "INTERNAL", errorKind(body))
	})
}

func TestGetCapture(t *testing.T) {
	f := newFixture(t, true)
	id := domain.CaptureID(uuid.New())
	f.captures.EXPECT().CaptureByID(gomock.Any(), id).Return(&domain.Capture{ID: id, Code: "hello", Type: "QR"}, nil)

	code, body := f.do(t, http.MethodGet, "/v1/captures/"+id.String())
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "hello", body["code"])

	missing := domain.CaptureID(uuid.New())
	f.captures.EXPECT().CaptureByID(gomock.Any(), missing).Return(nil, nil)
	code, body = f.do(t, http.MethodGet, "/v1/captures/"+missing.String())
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "NOT_FOUND", errorKind(body))

	code, _ = f.do(t, http.MethodGet, "/v1/captures/not-a-uuid")
	require.Equal(t, http.StatusBadRequest, code)
}
