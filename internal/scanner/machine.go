package scanner

import (
	"context"
	"sync/atomic"
	"time"

	"codescanner/pkg/domain"
	"codescanner/pkg/logger"
	"codescanner/pkg/metrics"

	"go.uber.org/zap"
)

// sessionGate pauses and resumes the capture session. The coordinator owns
// the session; the machine only asks for it to follow the current state.
type sessionGate interface {
	resume()
	pause()
}

// stateMachine owns the scan state and the lock flag. All methods must run on
// the controller's event loop.
//
// Every transition bumps generation. A scheduled re-arm remembers the
// generation it was created in and is ignored when it fires late, so a reset
// that races with the settle timer never applies the Scanning entry twice.
type stateMachine struct {
	ctx         context.Context
	gate        sessionGate
	permissions Permissions
	sink        ResultSink
	presenter   Presenter
	scheduler   Scheduler
	post        func(fn func()) bool
	metrics     *metrics.Scanner
	now         func() time.Time

	supported     domain.SymbologySet
	settleDelay   time.Duration
	errorDelay    time.Duration
	oneTimeSearch *atomic.Bool

	state      domain.ScanState
	pending    bool
	message    string
	locked     bool
	generation uint64
	enteredAt  time.Time
	rearm      *rearmTask

	snapshot atomic.Pointer[domain.Status]
}

func (m *stateMachine) init() {
	m.state = domain.ScanStateScanning
	m.pending = true
	m.enteredAt = m.now()
	m.publish()
}

// status returns the last published snapshot. Safe from any goroutine.
func (m *stateMachine) status() domain.Status {
	return *m.snapshot.Load()
}

// announce reports the current status to the presenter without a transition.
func (m *stateMachine) announce() {
	m.presenter.StatusChanged(m.status())
}

func (m *stateMachine) reset() {
	m.transition(domain.ScanStateScanning, "")
}

func (m *stateMachine) resetWithError(message string) {
	m.transition(domain.ScanStateNotFound, message)
}

func (m *stateMachine) transition(to domain.ScanState, message string) {
	from, since := m.state, m.enteredAt

	m.cancelRearm()
	m.generation++
	m.state = to
	m.pending = false
	m.message = message
	m.enteredAt = m.now()

	switch to {
	case domain.ScanStateScanning:
		m.locked = false
		m.gate.resume()
		m.presenter.SettingsPromptVisible(m.permissions.Status() != domain.AuthorizationAuthorized)
	case domain.ScanStateProcessing:
		m.gate.pause()
		m.presenter.Flash()
		m.scheduleRearm(m.settleDelay)
	case domain.ScanStateNotFound:
		m.locked = false
		m.gate.pause()
		m.scheduleRearm(m.errorDelay)
	case domain.ScanStateUnauthorized:
		m.locked = false
		m.gate.pause()
	}

	m.metrics.Transition(m.ctx, string(from), string(to), m.enteredAt.Sub(since))
	logger.Debug(m.ctx, "scan state changed",
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Uint64("generation", m.generation),
		zap.Bool("locked", m.locked))

	m.publish()
	m.presenter.StatusChanged(m.status())
}

func (m *stateMachine) publish() {
	m.snapshot.Store(&domain.Status{
		State:   m.state,
		Pending: m.pending,
		Locked:  m.locked,
		Message: m.message,
	})
}

// scheduleRearm arranges an automatic return to Scanning after d. A negative
// d leaves the machine in its current state until reset.
func (m *stateMachine) scheduleRearm(d time.Duration) {
	if d < 0 {
		return
	}

	generation := m.generation
	cancel := m.scheduler.AfterFunc(d, func() {
		m.post(func() { m.fireRearm(generation) })
	})
	m.rearm = &rearmTask{generation: generation, cancel: cancel}
}

func (m *stateMachine) fireRearm(generation uint64) {
	if m.rearm == nil || m.rearm.generation != generation || m.generation != generation {
		logger.Debug(m.ctx, "skipping stale re-arm",
			zap.Uint64("scheduled", generation),
			zap.Uint64("current", m.generation))

		return
	}
	m.rearm = nil

	// An automatic re-arm never reopens scanning while access is refused.
	switch m.permissions.Status() {
	case domain.AuthorizationDenied, domain.AuthorizationRestricted:
		m.transition(domain.ScanStateUnauthorized, "")
	default:
		m.transition(domain.ScanStateScanning, "")
	}
}

func (m *stateMachine) cancelRearm() {
	if m.rearm == nil {
		return
	}
	m.rearm.cancel()
	m.rearm = nil
}

// handleFrame runs the detections of one frame through the filter and the
// normalizer and decides whether a result is emitted.
func (m *stateMachine) handleFrame(frame []domain.Detection) {
	if m.state != domain.ScanStateScanning || m.pending {
		m.metrics.Detection(m.ctx, string(outcomeInactive))

		return
	}

	detection, outcome := classify(frame, m.locked, m.supported)
	m.metrics.Detection(m.ctx, string(outcome))
	if outcome != outcomeAccepted {
		if outcome == outcomeUnsupported {
			logger.Debug(m.ctx, "ignoring unsupported symbology",
				zap.String("symbology", string(frame[0].Symbology)))
		}

		return
	}

	result := Normalize(detection.RawCode, detection.Symbology)
	if m.oneTimeSearch.Load() {
		m.locked = true
		m.transition(domain.ScanStateProcessing, "")
	}

	m.metrics.Captured(m.ctx, result.Type)
	logger.Info(m.ctx, "code captured",
		zap.String("code", result.Code),
		zap.String("type", result.Type))
	m.sink.OnCodeCaptured(result.Code, result.Type)
}
