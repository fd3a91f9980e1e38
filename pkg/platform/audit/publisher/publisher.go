// Package publisher buffers audit events between domain logic and the store.
// Sync mode writes through immediately; async mode queues onto a channel
// drained by a single goroutine, so Emit never blocks a user interaction.
package publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	id "certflow/pkg/domain"
	audit "certflow/pkg/platform/audit"
	"certflow/pkg/requestcontext"
)

type Publisher struct {
	store  audit.Store
	logger *slog.Logger

	inbox  chan audit.Event
	done   chan struct{}
	closed sync.Once
}

type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to async mode with the given
// channel capacity.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.inbox = make(chan audit.Event, size)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:  store,
		logger: slog.Default(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.inbox != nil {
		go p.drain()
	}
	return p
}

// Emit records an event. Missing timestamps and categories are filled in
// here so call sites stay terse.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	if p.inbox == nil {
		return p.store.Append(ctx, event)
	}

	select {
	case p.inbox <- event:
		return nil
	default:
		// Buffer full: drop rather than block the request path. Audit gaps
		// are logged so operators can size the buffer.
		p.logger.Warn("audit buffer full, dropping event", "action", event.Action)
		return nil
	}
}

// List exposes the underlying store's per-user view.
func (p *Publisher) List(ctx context.Context, userID id.UserID) ([]audit.Event, error) {
	return p.store.ListByUser(ctx, userID)
}

func (p *Publisher) drain() {
	for {
		select {
		case event := <-p.inbox:
			p.append(event)
		case <-p.done:
			for {
				select {
				case event := <-p.inbox:
					p.append(event)
				default:
					return
				}
			}
		}
	}
}

func (p *Publisher) append(event audit.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.store.Append(ctx, event); err != nil {
		p.logger.Error("audit append failed", "action", event.Action, "error", err)
	}
}

// Close drains any queued events and stops the background goroutine.
func (p *Publisher) Close() {
	p.closed.Do(func() {
		close(p.done)
		if p.inbox != nil {
			// Give the drain loop a moment to flush remaining events.
			deadline := time.After(time.Second)
			for {
				select {
				case <-deadline:
					return
				default:
					if len(p.inbox) == 0 {
						return
					}
					time.Sleep(5 * time.Millisecond)
				}
			}
		}
	})
}
