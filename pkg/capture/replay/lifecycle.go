package replay

import "sync"

// Lifecycle is a foreground event source driven by Notify.
type Lifecycle struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{subs: make(map[int]func())}
}

func (l *Lifecycle) Subscribe(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.next
	l.next++
	l.subs[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}

// Notify reports that the app entered the foreground.
func (l *Lifecycle) Notify() {
	l.mu.Lock()
	subs := make([]func(), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
