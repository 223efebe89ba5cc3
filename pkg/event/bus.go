package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/joeydtaylor/steeze-worker/pkg/middleware/metrics"
	"go.uber.org/zap"
)

// Bus is an in-process Dispatcher. Listeners run in subscription order and the
// first listener error stops the broadcast and is returned to the caller.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
	any       []Listener
	log       *zap.Logger
}

func NewBus(log *zap.Logger) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{listeners: map[string][]Listener{}, log: log}
}

// Subscribe registers l for events called name; an empty name matches every event.
func (b *Bus) Subscribe(name string, l Listener) {
	if l == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if name == "" {
		b.any = append(b.any, l)
		return
	}
	b.listeners[name] = append(b.listeners[name], l)
}

func (b *Bus) Dispatch(ctx context.Context, ev Event) error {
	name := ev.Name()

	b.mu.RLock()
	ls := make([]Listener, 0, len(b.listeners[name])+len(b.any))
	ls = append(ls, b.listeners[name]...)
	ls = append(ls, b.any...)
	b.mu.RUnlock()

	metrics.LifecycleEvents.WithLabelValues(name).Inc()
	b.log.Debug("event dispatch", zap.String("event", name), zap.Int("listeners", len(ls)))

	for i, l := range ls {
		if err := l.Handle(ctx, ev); err != nil {
			b.log.Error("event listener failed",
				zap.String("event", name),
				zap.Int("listener", i),
				zap.Error(err),
			)
			return fmt.Errorf("event %s: listener %d: %w", name, i, err)
		}
	}
	return nil
}
