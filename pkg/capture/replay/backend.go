package replay

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"codescanner/pkg/domain"
	"codescanner/pkg/logger"
	"codescanner/pkg/serrors"

	"go.uber.org/zap"
)

// Backend is a capture backend that delivers scripted frames while its
// session runs.
type Backend struct {
	devices map[string]struct{}

	mu         sync.Mutex
	configured string
	running    bool
	torch      domain.TorchMode
	handler    func(frame []domain.Detection)
}

// NewBackend creates a Backend that accepts the given capture devices. With
// no devices every name is accepted.
func NewBackend(devices ...string) *Backend {
	b := &Backend{torch: domain.TorchModeOff}
	if len(devices) > 0 {
		b.devices = make(map[string]struct{}, len(devices))
		for _, d := range devices {
			b.devices[d] = struct{}{}
		}
	}

	return b
}

func (b *Backend) ConfigureInput(device string) error {
	if b.devices != nil {
		if _, ok := b.devices[device]; !ok {
			return serrors.With(serrors.ErrDeviceAcquisition, "capture device %q not available", device)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.configured = device

	return nil
}

func (b *Backend) StartSession() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.running = true
}

func (b *Backend) StopSession() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.running = false
}

func (b *Backend) SetTorchMode(mode domain.TorchMode) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.configured == "" {
		return serrors.With(serrors.ErrUnavailable, "no capture device configured")
	}
	b.torch = mode

	return nil
}

func (b *Backend) SetDetectionHandler(handler func(frame []domain.Detection)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handler = handler
}

// Running reports whether the session is started.
func (b *Backend) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.running
}

// TorchMode returns the last torch mode written.
func (b *Backend) TorchMode() domain.TorchMode {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.torch
}

// Deliver hands one frame to the detection handler if the session runs. It
// reports whether the frame was delivered.
func (b *Backend) Deliver(frame []domain.Detection) bool {
	b.mu.Lock()
	handler, running := b.handler, b.running
	b.mu.Unlock()

	if !running || handler == nil {
		return false
	}
	handler(frame)

	return true
}

// Run reads a frame script from r and delivers one frame per interval until
// the script ends or ctx is done. Frames that come up while the session is
// stopped are skipped, like a camera that is off.
func (b *Backend) Run(ctx context.Context, r io.Reader, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		scanner   = bufio.NewScanner(r)
		line      int
		delivered int
		skipped   int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(text, "#") {
			continue
		}

		frame, err := ParseFrame(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if b.Deliver(frame) {
			delivered++
		} else {
			skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read frame script: %w", err)
	}

	logger.Info(ctx, "frame script finished", zap.Int("delivered", delivered), zap.Int("skipped", skipped))

	return nil
}

// ParseFrame parses one script line into the detections of a frame. Names
// that are not known symbologies are kept verbatim so the scanner can reject
// them.
func ParseFrame(line string) ([]domain.Detection, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	parts := strings.Split(line, ";")
	frame := make([]domain.Detection, 0, len(parts))
	for _, part := range parts {
		name, code, ok := strings.Cut(strings.TrimSpace(part), " ")
		code = strings.TrimSpace(code)
		if !ok || code == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "detection %q must be \"SYMBOLOGY CODE\"", part)
		}

		symbology, err := domain.ParseSymbology(name)
		if err != nil {
			symbology = domain.Symbology(strings.ToUpper(name))
		}
		frame = append(frame, domain.Detection{RawCode: code, Symbology: symbology})
	}

	return frame, nil
}
