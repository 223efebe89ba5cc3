package event

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Subscription is contributed to the "event_listeners" group to attach a
// listener to the bus at construction.
type Subscription struct {
	Event    string
	Listener Listener
}

// AsListener contributes fn as a listener for the named event (empty = all).
func AsListener(name string, fn ListenerFunc) fx.Option {
	return fx.Provide(fx.Annotated{
		Group:  "event_listeners",
		Target: func() Subscription { return Subscription{Event: name, Listener: fn} },
	})
}

type busParams struct {
	fx.In
	Logger *zap.Logger
	Subs   []Subscription `group:"event_listeners"`
}

func provideBus(p busParams) *Bus {
	b := NewBus(p.Logger.Named("events"))
	for _, s := range p.Subs {
		b.Subscribe(s.Event, s.Listener)
	}
	return b
}

var Module = fx.Options(
	fx.Provide(provideBus),
	fx.Provide(func(b *Bus) Dispatcher { return b }),
)
