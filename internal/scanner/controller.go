package scanner

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"codescanner/internal/config"
	"codescanner/pkg/domain"
	"codescanner/pkg/logger"
	"codescanner/pkg/metrics"
	"codescanner/pkg/serrors"

	"go.uber.org/zap"
)

const (
	// DefaultSettleDelay is the pause after a capture before scanning resumes.
	DefaultSettleDelay = 500 * time.Millisecond
	// DefaultErrorDisplayDelay is how long the NotFound state is shown.
	DefaultErrorDisplayDelay = 2 * time.Second
	// DefaultFrameQueueSize bounds the frames waiting for the event loop.
	DefaultFrameQueueSize = 16
)

// Options configure a Controller.
type Options struct {
	// OneTimeSearch reports at most one result per scanning activation.
	OneTimeSearch bool
	// SettleDelay is the time spent in Processing before re-arming. Zero
	// means DefaultSettleDelay; a negative value disables the automatic re-arm.
	SettleDelay time.Duration
	// ErrorDisplayDelay is the time spent in NotFound before re-arming. Zero
	// means DefaultErrorDisplayDelay; a negative value disables the automatic
	// re-arm.
	ErrorDisplayDelay time.Duration
	// Symbologies is the supported set. Empty means domain.DefaultSymbologies.
	Symbologies []domain.Symbology
	// Device is the capture input to configure once access is granted.
	Device string
	// TorchMode is applied after the capture input is configured.
	TorchMode domain.TorchMode
	// FrameQueueSize bounds the frames waiting to be processed.
	FrameQueueSize int
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) (Options, error) {
	symbologies := make([]domain.Symbology, 0, len(cfg.Scanner.Symbologies))
	for _, name := range cfg.Scanner.Symbologies {
		s, err := domain.ParseSymbology(name)
		if err != nil {
			return Options{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scanner config")
		}
		symbologies = append(symbologies, s)
	}

	return Options{
		OneTimeSearch:     !cfg.Scanner.Continuous,
		SettleDelay:       cfg.Scanner.SettleDelay,
		ErrorDisplayDelay: cfg.Scanner.ErrorDisplayDelay,
		Symbologies:       symbologies,
		Device:            cfg.Scanner.Device,
		TorchMode:         domain.ParseTorchMode(cfg.Scanner.TorchMode),
		FrameQueueSize:    cfg.Scanner.FrameQueueSize,
	}, nil
}

// Deps are the collaborators of a Controller. Backend, Permissions and Sink
// are required.
type Deps struct {
	Backend     CaptureBackend
	Permissions Permissions
	Sink        ResultSink
	// Foreground is optional; without it torch mode is never reset.
	Foreground ForegroundEvents
	// Presenter is optional.
	Presenter Presenter
	// Scheduler is optional and defaults to runtime timers.
	Scheduler Scheduler
	// Metrics is optional.
	Metrics *metrics.Scanner
}

// Controller is the code scanning controller. It serializes detections,
// authorization and lifecycle events onto one event loop where the state
// machine and the session coordinator live.
//
// Methods are safe for concurrent use. Flush and Close wait for the event
// loop and must not be called from ResultSink or Presenter callbacks; the
// other methods may be.
type Controller struct {
	ctx           context.Context
	loop          *eventLoop
	machine       *stateMachine
	coordinator   *coordinator
	backend       CaptureBackend
	metrics       *metrics.Scanner
	oneTimeSearch atomic.Bool

	closed    atomic.Bool
	closeOnce sync.Once
}

// New creates a Controller. It does not touch the backend until Start.
func New(ctx context.Context, deps Deps, opts Options) (*Controller, error) {
	if deps.Backend == nil || deps.Permissions == nil || deps.Sink == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "backend, permissions and sink are required")
	}
	if deps.Presenter == nil {
		deps.Presenter = nopPresenter{}
	}
	if deps.Scheduler == nil {
		deps.Scheduler = clockScheduler{}
	}
	if deps.Metrics == nil {
		m, err := metrics.NewScanner(nil)
		if err != nil {
			return nil, fmt.Errorf("could not create metrics: %w", err)
		}
		deps.Metrics = m
	}
	if len(opts.Symbologies) == 0 {
		opts.Symbologies = domain.DefaultSymbologies
	}
	if opts.SettleDelay == 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.ErrorDisplayDelay == 0 {
		opts.ErrorDisplayDelay = DefaultErrorDisplayDelay
	}
	if opts.FrameQueueSize <= 0 {
		opts.FrameQueueSize = DefaultFrameQueueSize
	}
	if opts.TorchMode == "" {
		opts.TorchMode = domain.TorchModeOff
	}

	ctx = logger.Named(ctx, "scanner")
	c := &Controller{
		ctx:     ctx,
		loop:    newEventLoop(opts.FrameQueueSize),
		backend: deps.Backend,
		metrics: deps.Metrics,
	}
	c.oneTimeSearch.Store(opts.OneTimeSearch)

	session := &captureSession{ctx: ctx, backend: deps.Backend}
	c.machine = &stateMachine{
		ctx:           ctx,
		gate:          session,
		permissions:   deps.Permissions,
		sink:          deps.Sink,
		presenter:     deps.Presenter,
		scheduler:     deps.Scheduler,
		post:          c.loop.post,
		metrics:       deps.Metrics,
		now:           time.Now,
		supported:     domain.NewSymbologySet(opts.Symbologies...),
		settleDelay:   opts.SettleDelay,
		errorDelay:    opts.ErrorDisplayDelay,
		oneTimeSearch: &c.oneTimeSearch,
	}
	c.machine.init()
	c.coordinator = &coordinator{
		ctx:         ctx,
		permissions: deps.Permissions,
		foreground:  deps.Foreground,
		backend:     deps.Backend,
		sink:        deps.Sink,
		machine:     c.machine,
		session:     session,
		post:        c.loop.post,
		device:      opts.Device,
		torch:       opts.TorchMode,
	}

	return c, nil
}

// Start registers for detections and resolves camera authorization. The
// status stays pending until authorization is known.
func (c *Controller) Start() error {
	if c.closed.Load() {
		return serrors.KindOnly(serrors.ErrClosed)
	}

	c.backend.SetDetectionHandler(c.deliver)
	if !c.loop.post(c.coordinator.start) {
		return serrors.KindOnly(serrors.ErrClosed)
	}

	return nil
}

// deliver is the backend's detection handler. It never blocks and does not
// retain frame, so backends may reuse the slice once it returns.
func (c *Controller) deliver(frame []domain.Detection) {
	if c.closed.Load() {
		return
	}
	detections := slices.Clone(frame)
	if !c.loop.postFrame(func() { c.machine.handleFrame(detections) }) {
		c.metrics.DroppedFrame(c.ctx)
		logger.Warn(c.ctx, "dropping capture frame, event queue full", zap.Int("detections", len(frame)))
	}
}

// Reset re-arms scanning: the state becomes Scanning unconditionally.
func (c *Controller) Reset() {
	c.loop.post(c.coordinator.reset)
}

// ResetWithError shows the NotFound state with message. Scanning re-arms on
// its own after the error display delay.
func (c *Controller) ResetWithError(message string) {
	c.loop.post(func() { c.coordinator.resetWithError(message) })
}

// OnAuthorizationResolved feeds an authorization change from the platform.
func (c *Controller) OnAuthorizationResolved(status domain.AuthorizationStatus) {
	c.loop.post(func() { c.coordinator.onAuthorizationResolved(status) })
}

// OnAppForeground feeds an app-will-enter-foreground event from the platform.
func (c *Controller) OnAppForeground() {
	c.loop.post(c.coordinator.onAppForeground)
}

// SetOneTimeSearch changes the one-time search mode. It takes effect on the
// next detection.
func (c *Controller) SetOneTimeSearch(enabled bool) {
	c.oneTimeSearch.Store(enabled)
}

// OneTimeSearch reports the one-time search mode.
func (c *Controller) OneTimeSearch() bool {
	return c.oneTimeSearch.Load()
}

// SetTorchMode writes the torch mode and waits for the result.
func (c *Controller) SetTorchMode(ctx context.Context, mode domain.TorchMode) error {
	var err error
	if callErr := c.loop.call(ctx, func() { err = c.coordinator.setTorchMode(mode) }); callErr != nil {
		return callErr
	}

	return err
}

// Status returns the latest status snapshot.
func (c *Controller) Status() domain.Status {
	return c.machine.status()
}

// Flush waits until every event queued before the call has been processed.
func (c *Controller) Flush(ctx context.Context) error {
	return c.loop.call(ctx, func() {})
}

// Close unsubscribes from foreground events, cancels a pending re-arm, stops
// the capture session and terminates the event loop. It is idempotent.
func (c *Controller) Close(ctx context.Context) error {
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		err = c.loop.call(ctx, c.coordinator.close)
		c.loop.stop()
		// The loop has exited, so the teardown can run here when ctx expired
		// before the queued close was reached. It is a no-op otherwise.
		c.coordinator.close()
		logger.Debug(c.ctx, "scanner closed")
	})

	return err
}

type nopPresenter struct{}

func (nopPresenter) StatusChanged(domain.Status) {}
func (nopPresenter) Flash()                      {}
func (nopPresenter) SettingsPromptVisible(bool)  {}
