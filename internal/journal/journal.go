// Package journal records every code the scanner emits. Captures are written
// to storage in batches from a background goroutine so the scanner's event
// loop never waits on the database.
package journal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"codescanner/internal/config"
	"codescanner/internal/scanner"
	"codescanner/pkg/domain"
	"codescanner/pkg/logger"
	"codescanner/pkg/metrics"
	"codescanner/pkg/storage"

	"go.uber.org/zap"
)

// Options configure a Sink.
type Options struct {
	// BufferSize is the number of captures waiting to be written. When it is
	// full new captures are dropped.
	BufferSize int
	// BatchSize is the maximum number of captures written in one transaction.
	BatchSize int
	// FlushInterval is the longest a capture waits in the buffer.
	FlushInterval time.Duration
	// Retention removes captures older than this after each write. Zero keeps
	// everything.
	Retention time.Duration
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BufferSize:    cfg.Journal.BufferSize,
		BatchSize:     cfg.Journal.BatchSize,
		FlushInterval: cfg.Journal.FlushInterval,
		Retention:     cfg.Journal.Retention,
	}
}

// Sink is a scanner.ResultSink that forwards results to another sink and
// journals captured codes.
type Sink struct {
	ctx       context.Context
	next      scanner.ResultSink
	storage   storage.Storage
	metrics   *metrics.Journal
	sessionID domain.SessionID
	now       func() time.Time
	opts      Options

	mu       sync.RWMutex
	closed   bool
	captures chan domain.Capture
	done     chan struct{}
}

var _ scanner.ResultSink = (*Sink)(nil)

// New starts the journal writer. Call Close to flush and stop it.
func New(ctx context.Context,
	next scanner.ResultSink,
	strg storage.Storage,
	m *metrics.Journal,
	opts Options) (*Sink, error) {
	if m == nil {
		var err error
		if m, err = metrics.NewJournal(nil); err != nil {
			return nil, fmt.Errorf("could not create journal metrics: %w", err)
		}
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 256
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 32
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = time.Second
	}

	s := &Sink{
		next:      next,
		storage:   strg,
		metrics:   m,
		sessionID: domain.NewSessionID(),
		now:       time.Now,
		opts:      opts,
		captures:  make(chan domain.Capture, opts.BufferSize),
		done:      make(chan struct{}),
	}
	s.ctx = logger.WithFields(logger.Named(ctx, "journal"), zap.Stringer("session", s.sessionID))
	go s.run()

	return s, nil
}

// SessionID identifies the captures recorded by this sink.
func (s *Sink) SessionID() domain.SessionID {
	return s.sessionID
}

func (s *Sink) OnCodeCaptured(code string, codeType string) {
	if s.next != nil {
		s.next.OnCodeCaptured(code, codeType)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}

	select {
	case s.captures <- domain.Capture{
		SessionID:  s.sessionID,
		Code:       code,
		Type:       codeType,
		CapturedAt: s.now(),
	}:
	default:
		s.metrics.Overflow(s.ctx)
		logger.Warn(s.ctx, "journal buffer full, capture not recorded", zap.String("code", code))
	}
}

func (s *Sink) OnError(err error) {
	if s.next != nil {
		s.next.OnError(err)
	}
}

// Close stops accepting captures and waits until the buffered ones are
// written or ctx is done.
func (s *Sink) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.captures)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for journal flush: %w", ctx.Err())
	}
}

func (s *Sink) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.opts.FlushInterval)
	defer ticker.Stop()

	batch := make([]domain.Capture, 0, s.opts.BatchSize)
	for {
		select {
		case c, ok := <-s.captures:
			if !ok {
				s.flush(batch)

				return
			}
			batch = append(batch, c)
			if len(batch) >= s.opts.BatchSize {
				s.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			s.flush(batch)
			batch = batch[:0]
		}
	}
}

func (s *Sink) flush(batch []domain.Capture) {
	if len(batch) == 0 {
		return
	}

	err := s.storage.WithTx(s.ctx, func(tx storage.AllStorage) error {
		if _, err := tx.StoreCaptures(s.ctx, batch...); err != nil {
			return err //nolint: wrapcheck
		}
		if s.opts.Retention > 0 {
			n, err := tx.DeleteCapturesBefore(s.ctx, s.now().Add(-s.opts.Retention))
			if err != nil {
				return err //nolint: wrapcheck
			}
			if n > 0 {
				logger.Debug(s.ctx, "expired old captures", zap.Int64("deleted", n))
			}
		}

		return nil
	})
	if err != nil {
		s.metrics.Failed(s.ctx, len(batch))
		logger.Error(s.ctx, "could not write captures", zap.Int("count", len(batch)), zap.Error(err))

		return
	}

	s.metrics.Written(s.ctx, len(batch))
	logger.Debug(s.ctx, "captures written", zap.Int("count", len(batch)))
}
