package audit

import (
	"context"
	"log/slog"
	"time"
)

// Recorder decouples the request path from the sink: events go into a
// buffered inbox and a worker drains them. A full inbox drops the event with
// a warning rather than stalling an assessment.
type Recorder struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewRecorder(buffer int, logger *slog.Logger) *Recorder {
	return &Recorder{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Record enqueues an event without blocking.
func (r *Recorder) Record(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case r.inbox <- event:
	default:
		r.logger.Warn("audit inbox full, dropping event",
			"session_id", event.SessionID,
			"action", event.Action,
		)
	}
}

// Run drains the inbox into the publisher until the context is cancelled.
func (r *Recorder) Run(ctx context.Context, publisher Publisher) error {
	for {
		select {
		case <-ctx.Done():
			r.drain(publisher)
			return ctx.Err()
		case event := <-r.inbox:
			if err := publisher.Emit(ctx, event); err != nil {
				r.logger.Error("audit emit failed",
					"session_id", event.SessionID,
					"action", event.Action,
					"error", err,
				)
			}
		}
	}
}

// drain flushes whatever is still buffered at shutdown.
func (r *Recorder) drain(publisher Publisher) {
	for {
		select {
		case event := <-r.inbox:
			if err := publisher.Emit(context.Background(), event); err != nil {
				return
			}
		default:
			return
		}
	}
}
