// Package hooks dispatches host lifecycle events to subscribed handlers.
package hooks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
	"github.com/angelmondragon/vendorpayments-backend/pkg/metrics"
)

// Event is one occurrence of a host hook. Fields carries submitted form
// values for the save hooks and is nil otherwise.
type Event struct {
	Name     enums.HookName
	EntityID int64
	Fields   map[string]string
}

// Field returns the submitted value for key, or "" when absent.
func (e Event) Field(key string) string {
	if e.Fields == nil {
		return ""
	}
	return e.Fields[key]
}

// Handler reacts to a hook event.
type Handler func(ctx context.Context, event Event) error

type subscription struct {
	name    string
	handler Handler
}

// Registry holds the handlers registered at bootstrap. Dispatch is synchronous
// and runs handlers in subscription order.
type Registry struct {
	mu       sync.RWMutex
	handlers map[enums.HookName][]subscription
	logg     *logger.Logger
	metrics  *metrics.HookMetrics
}

// NewRegistry builds an empty registry. Both arguments may be nil.
func NewRegistry(logg *logger.Logger, m *metrics.HookMetrics) *Registry {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Registry{
		handlers: make(map[enums.HookName][]subscription),
		logg:     logg,
		metrics:  m,
	}
}

// Subscribe attaches handler to hook under a descriptive name used in logs.
func (r *Registry) Subscribe(hook enums.HookName, name string, handler Handler) error {
	if !hook.IsValid() {
		return fmt.Errorf("unknown hook %q", hook)
	}
	if handler == nil {
		return fmt.Errorf("handler for %s is required", hook)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[hook] = append(r.handlers[hook], subscription{name: name, handler: handler})
	return nil
}

// Handlers returns the number of handlers subscribed to hook.
func (r *Registry) Handlers(hook enums.HookName) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[hook])
}

// Dispatch runs every handler subscribed to event.Name. A failing or panicking
// handler does not stop the remaining handlers; their errors are combined.
func (r *Registry) Dispatch(ctx context.Context, event Event) error {
	r.mu.RLock()
	subs := append([]subscription(nil), r.handlers[event.Name]...)
	r.mu.RUnlock()

	ctx = r.logg.WithFields(ctx, map[string]any{
		"hook":      event.Name,
		"entity_id": event.EntityID,
	})

	var errs error
	for _, sub := range subs {
		started := time.Now()
		err := r.run(ctx, sub, event)
		r.metrics.ObserveDuration(event.Name.String(), time.Since(started))
		if err != nil {
			r.metrics.IncFailure(event.Name.String())
			r.logg.Error(r.logg.WithField(ctx, "handler", sub.name), "hook handler failed", err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", sub.name, err))
			continue
		}
		r.metrics.IncSuccess(event.Name.String())
	}
	return errs
}

func (r *Registry) run(ctx context.Context, sub subscription, event Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return sub.handler(ctx, event)
}
