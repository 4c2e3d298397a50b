// Package event is an in-process publish/subscribe bus. Handlers run
// synchronously in registration order and their failures are returned to
// the dispatcher.
package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Event interface {
	Name() string
}

type Handler func(ctx context.Context, e Event) error

// Bus is an in-memory event bus.
type Bus struct {
	mu         sync.RWMutex
	handlers   map[string][]Handler
	log        *slog.Logger
	dispatched *prometheus.CounterVec
}

// NewBus creates a bus. reg may be nil, in which case metrics are not
// registered anywhere.
func NewBus(log *slog.Logger, reg prometheus.Registerer) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		log:      log.With("component", "event"),
		dispatched: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "quiz",
			Name:      "events_handled_total",
			Help:      "Event handler invocations by event name and outcome.",
		}, []string{"event", "outcome"}),
	}
}

// Subscribe registers h for events named name.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], h)
}

// On registers a handler typed to the concrete event E. The event name is
// taken from E's zero value.
func On[E Event](b *Bus, fn func(ctx context.Context, e E) error) {
	var zero E
	name := zero.Name()
	b.Subscribe(name, func(ctx context.Context, e Event) error {
		typed, ok := e.(E)
		if !ok {
			return fmt.Errorf("event %s: unexpected payload %T", name, e)
		}
		return fn(ctx, typed)
	})
}

// Dispatch runs every handler subscribed to e.Name() and waits for each.
// A failing or panicking handler does not stop the others; all failures are
// joined into the returned error.
func (b *Bus) Dispatch(ctx context.Context, e Event) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[e.Name()]))
	copy(handlers, b.handlers[e.Name()])
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := b.run(ctx, h, e); err != nil {
			b.dispatched.WithLabelValues(e.Name(), "error").Inc()
			errs = append(errs, err)
			continue
		}
		b.dispatched.WithLabelValues(e.Name(), "ok").Inc()
	}

	return errors.Join(errs...)
}

func (b *Bus) run(ctx context.Context, h Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.log.ErrorContext(ctx, "event: handler panic",
				slog.String("event", e.Name()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("event %s: handler panic: %v", e.Name(), r)
		}
	}()

	if err := h(ctx, e); err != nil {
		return fmt.Errorf("event %s: %w", e.Name(), err)
	}
	return nil
}

// HandlerCount returns the number of handlers subscribed to name.
func (b *Bus) HandlerCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}

// Counter returns the handled-events counter for one event and outcome.
func (b *Bus) Counter(name, outcome string) prometheus.Counter {
	return b.dispatched.WithLabelValues(name, outcome)
}
