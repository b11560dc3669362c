package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codescanner/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof")

	tests := []struct {
		path string
		want int
	}{
		{path: "/debug/pprof/", want: http.StatusOK},
		{path: "/debug/pprof/cmdline", want: http.StatusOK},
		{path: "/debug/pprof/goroutine?debug=1", want: http.StatusOK},
		{path: "/debug/pprof/nope", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.want, rec.Code)
		})
	}
}
