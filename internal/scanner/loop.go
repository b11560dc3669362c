package scanner

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"codescanner/pkg/serrors"
)

// controlHeadroom is the number of queue slots frames can never occupy, so a
// control event posted from a sink callback finds room even when the camera
// floods the queue.
const controlHeadroom = 64

// eventLoop runs every state mutation on a single goroutine. Frames are
// posted without blocking and dropped when their share of the queue is full;
// control events wait for a slot.
type eventLoop struct {
	events     chan func()
	frameLimit int64
	frames     atomic.Int64

	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newEventLoop(frameLimit int) *eventLoop {
	if frameLimit < 1 {
		frameLimit = 1
	}
	l := &eventLoop{
		events:     make(chan func(), frameLimit+controlHeadroom),
		frameLimit: int64(frameLimit),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go l.run()

	return l
}

func (l *eventLoop) run() {
	defer close(l.done)
	for {
		select {
		case fn := <-l.events:
			fn()
		case <-l.quit:
			return
		}
	}
}

// post queues fn, blocking while the queue is full. It returns false once the
// loop is stopped.
func (l *eventLoop) post(fn func()) bool {
	select {
	case <-l.quit:
		return false
	default:
	}

	select {
	case l.events <- fn:
		return true
	case <-l.quit:
		return false
	}
}

// postFrame queues fn without blocking. It returns false when the frame was
// dropped.
func (l *eventLoop) postFrame(fn func()) bool {
	if l.frames.Add(1) > l.frameLimit {
		l.frames.Add(-1)

		return false
	}

	wrapped := func() {
		l.frames.Add(-1)
		fn()
	}
	select {
	case <-l.quit:
	case l.events <- wrapped:
		return true
	default:
	}
	l.frames.Add(-1)

	return false
}

// call runs fn on the loop and waits for it to finish. It must not be used
// from the loop goroutine.
func (l *eventLoop) call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.post(func() {
		defer close(finished)
		fn()
	}) {
		return serrors.KindOnly(serrors.ErrClosed)
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return serrors.KindOnly(serrors.ErrClosed)
	case <-ctx.Done():
		return fmt.Errorf("waiting for event loop: %w", ctx.Err())
	}
}

// stop terminates the loop after the event being processed, if any.
// Queued events are discarded.
func (l *eventLoop) stop() {
	l.stopOnce.Do(func() { close(l.quit) })
	<-l.done
}
