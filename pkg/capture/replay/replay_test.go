package replay_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"codescanner/internal/scanner"
	"codescanner/pkg/capture/replay"
	"codescanner/pkg/domain"
	"codescanner/pkg/serrors"

	"github.com/stretchr/testify/require"
)

var (
	_ scanner.CaptureBackend   = (*replay.Backend)(nil)
	_ scanner.Permissions      = (*replay.Permissions)(nil)
	_ scanner.ForegroundEvents = (*replay.Lifecycle)(nil)
)

func TestParseFrame(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []domain.Detection
		wantErr bool
	}{
		{
			name: "blank line is an empty frame",
			line: "   ",
			want: nil,
		},
		{
			name: "single detection",
			line: "ean-13 0012345678905",
			want: []domain.Detection{{RawCode: "0012345678905", Symbology: domain.SymbologyEAN13}},
		},
		{
			name: "code keeps inner spaces",
			line: "QR hello world",
			want: []domain.Detection{{RawCode: "hello world", Symbology: domain.SymbologyQR}},
		},
		{
			name: "several detections",
			line: "QR https://example.com; EAN8 96385074",
			want: []domain.Detection{
				{RawCode: "https://example.com", Symbology: domain.SymbologyQR},
				{RawCode: "96385074", Symbology: domain.SymbologyEAN8},
			},
		},
		{
			name: "unknown symbology is kept",
			line: "codabar A40156B",
			want: []domain.Detection{{RawCode: "A40156B", Symbology: "CODABAR"}},
		},
		{
			name:    "missing code",
			line:    "EAN13",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := replay.ParseFrame(tt.line)
			if tt.wantErr {
				require.ErrorIs(t, err, serrors.ErrBadRequest)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

type frames struct {
	mu  sync.Mutex
	got [][]domain.Detection
}

func (f *frames) handle(frame []domain.Detection) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, frame)
}

func (f *frames) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.got)
}

func TestBackend_Run(t *testing.T) {
	b := replay.NewBackend()
	var f frames
	b.SetDetectionHandler(f.handle)

	script := "# warm up\nQR a\n\nEAN13 4006381333931\n"

	// stopped session: frames are skipped
	require.NoError(t, b.Run(context.Background(), strings.NewReader(script), time.Millisecond))
	require.Zero(t, f.len())

	require.NoError(t, b.ConfigureInput("any"))
	b.StartSession()
	require.True(t, b.Running())
	require.NoError(t, b.Run(context.Background(), strings.NewReader(script), time.Millisecond))

	f.mu.Lock()
	defer f.mu.Unlock()
	require.Equal(t, [][]domain.Detection{
		{{RawCode: "a", Symbology: domain.SymbologyQR}},
		nil,
		{{RawCode: "4006381333931", Symbology: domain.SymbologyEAN13}},
	}, f.got)
}

func TestBackend_RunStopsOnContext(t *testing.T) {
	b := replay.NewBackend()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, b.Run(ctx, strings.NewReader("QR a\nQR b\n"), time.Hour))
}

func TestBackend_RunRejectsMalformedScript(t *testing.T) {
	b := replay.NewBackend()

	err := b.Run(context.Background(), strings.NewReader("QR a\nEAN13\n"), time.Millisecond)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.ErrorContains(t, err, "line 2")
}

func TestBackend_ConfigureInput(t *testing.T) {
	b := replay.NewBackend("back", "front")

	require.ErrorIs(t, b.SetTorchMode(domain.TorchModeOn), serrors.ErrUnavailable)
	require.ErrorIs(t, b.ConfigureInput("usb"), serrors.ErrDeviceAcquisition)
	require.NoError(t, b.ConfigureInput("back"))

	require.NoError(t, b.SetTorchMode(domain.TorchModeAuto))
	require.Equal(t, domain.TorchModeAuto, b.TorchMode())
}

func TestPermissions_RequestAccess(t *testing.T) {
	for _, grant := range []bool{true, false} {
		p := replay.NewPermissions(domain.AuthorizationNotDetermined, grant)
		require.Equal(t, domain.AuthorizationNotDetermined, p.Status())

		answered := make(chan bool, 1)
		p.RequestAccess(func(granted bool) { answered <- granted })

		select {
		case got := <-answered:
			require.Equal(t, grant, got)
		case <-time.After(time.Second):
			t.Fatal("no answer")
		}

		want := domain.AuthorizationDenied
		if grant {
			want = domain.AuthorizationAuthorized
		}
		require.Equal(t, want, p.Status())
	}
}

func TestLifecycle(t *testing.T) {
	l := replay.NewLifecycle()

	var a, b int
	unsubA := l.Subscribe(func() { a++ })
	l.Subscribe(func() { b++ })

	l.Notify()
	unsubA()
	l.Notify()

	require.Equal(t, 1, a)
	require.Equal(t, 2, b)
}

type collectingSink struct {
	mu    sync.Mutex
	codes []domain.NormalizedResult
}

func (s *collectingSink) OnCodeCaptured(code string, codeType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes = append(s.codes, domain.NormalizedResult{Code: code, Type: codeType})
}

func (s *collectingSink) OnError(error) {}

func (s *collectingSink) results() []domain.NormalizedResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.NormalizedResult(nil), s.codes...)
}

func TestReplayDrivesController(t *testing.T) {
	backend := replay.NewBackend("back")
	sink := &collectingSink{}

	c, err := scanner.New(context.Background(), scanner.Deps{
		Backend:     backend,
		Permissions: replay.NewPermissions(domain.AuthorizationNotDetermined, true),
		Sink:        sink,
		Foreground:  replay.NewLifecycle(),
	}, scanner.Options{Device: "back", OneTimeSearch: false})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close(context.Background()) })

	require.NoError(t, c.Start())
	require.Eventually(t, backend.Running, time.Second, time.Millisecond)

	script := "EAN13 0012345678905\nCODABAR A40156B\nQR hello\n"
	require.NoError(t, backend.Run(context.Background(), strings.NewReader(script), time.Millisecond))
	require.NoError(t, c.Flush(context.Background()))

	require.Equal(t, []domain.NormalizedResult{
		{Code: "012345678905", Type: "UPCA"},
		{Code: "hello", Type: "QR"},
	}, sink.results())
}
