package scanner

import (
	"context"

	"codescanner/pkg/domain"
	"codescanner/pkg/logger"
	"codescanner/pkg/serrors"

	"go.uber.org/zap"
)

// captureSession is the only path to CaptureBackend.StartSession and
// StopSession. It makes both idempotent and refuses to start a session that
// has no configured input.
type captureSession struct {
	ctx        context.Context
	backend    CaptureBackend
	configured bool
	running    bool
}

func (s *captureSession) configure(device string) error {
	if s.configured {
		return nil
	}
	if err := s.backend.ConfigureInput(device); err != nil {
		if serrors.KindOf(err) != nil {
			return err
		}

		return serrors.Wrap(serrors.ErrDeviceAcquisition, err, "could not configure capture input %q", device)
	}
	s.configured = true

	return nil
}

func (s *captureSession) resume() {
	if s.running {
		return
	}
	if !s.configured {
		logger.Debug(s.ctx, "capture input not configured, session stays stopped")

		return
	}
	s.backend.StartSession()
	s.running = true
}

func (s *captureSession) pause() {
	if !s.running {
		return
	}
	s.backend.StopSession()
	s.running = false
}

// coordinator reacts to authorization and app lifecycle events and drives the
// state machine accordingly. Like the machine, it runs on the event loop.
type coordinator struct {
	ctx         context.Context
	permissions Permissions
	foreground  ForegroundEvents
	backend     CaptureBackend
	sink        ResultSink
	machine     *stateMachine
	session     *captureSession
	post        func(fn func()) bool
	device      string
	torch       domain.TorchMode

	unsubscribe func()
	started     bool
	closed      bool
}

// start subscribes to foreground events and resolves the initial
// authorization, asking for access when it is not determined yet.
func (c *coordinator) start() {
	if c.started || c.closed {
		return
	}
	c.started = true
	c.machine.announce()

	if c.foreground != nil {
		c.unsubscribe = c.foreground.Subscribe(func() {
			c.post(c.onAppForeground)
		})
	}

	status := c.permissions.Status()
	if status != domain.AuthorizationNotDetermined {
		c.onAuthorizationResolved(status)

		return
	}

	logger.Info(c.ctx, "requesting camera access")
	c.permissions.RequestAccess(func(granted bool) {
		resolved := domain.AuthorizationDenied
		if granted {
			resolved = domain.AuthorizationAuthorized
		}
		c.post(func() { c.onAuthorizationResolved(resolved) })
	})
}

func (c *coordinator) onAuthorizationResolved(status domain.AuthorizationStatus) {
	if c.closed {
		return
	}

	switch status {
	case domain.AuthorizationAuthorized:
		// A configuration failure is reported once and leaves the state in
		// Scanning with no running session.
		if err := c.session.configure(c.device); err != nil {
			logger.Error(c.ctx, "could not set up capture session", zap.Error(err))
			c.sink.OnError(err)
		} else if c.torch != domain.TorchModeOff {
			// Logged by setTorchMode. A missing torch does not stop scanning.
			_ = c.setTorchMode(c.torch)
		}
		c.machine.transition(domain.ScanStateScanning, "")
	case domain.AuthorizationDenied, domain.AuthorizationRestricted:
		logger.Warn(c.ctx, "camera access unavailable",
			zap.Error(serrors.With(serrors.ErrPermissionDenied, "authorization %s", status)))
		c.machine.transition(domain.ScanStateUnauthorized, "")
	default:
		logger.Debug(c.ctx, "authorization pending", zap.String("status", string(status)))
	}
}

// onAppForeground turns the torch off. The scan state is left untouched.
func (c *coordinator) onAppForeground() {
	if c.closed {
		return
	}
	c.setTorchMode(domain.TorchModeOff)
}

func (c *coordinator) setTorchMode(mode domain.TorchMode) error {
	if err := c.backend.SetTorchMode(mode); err != nil {
		logger.Warn(c.ctx, "could not set torch mode", zap.String("mode", string(mode)), zap.Error(err))

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not set torch mode")
	}
	c.torch = mode

	return nil
}

func (c *coordinator) reset() {
	if c.closed {
		return
	}
	c.machine.reset()
}

func (c *coordinator) resetWithError(message string) {
	if c.closed {
		return
	}
	c.machine.resetWithError(message)
}

func (c *coordinator) close() {
	if c.closed {
		return
	}
	c.closed = true

	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.machine.cancelRearm()
	c.session.pause()
}
