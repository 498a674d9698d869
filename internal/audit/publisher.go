package audit

import (
	"context"
	"sync"
	"time"
)

// Publisher is an append-only sink for assessment trail events.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
	Close() error
}

// MemoryPublisher buffers events in memory. Used in tests and when no
// broker is configured.
type MemoryPublisher struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Emit(_ context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a snapshot of everything emitted so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Event{}, p.events...)
}

func (p *MemoryPublisher) Close() error { return nil }
