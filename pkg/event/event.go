// Package event carries worker lifecycle events to interested listeners.
package event

import (
	"context"

	"github.com/joeydtaylor/steeze-worker/pkg/environment"
)

const (
	NameWorkerStart = "worker.start"
	NameWorkerStop  = "worker.stop"
)

type Event interface {
	Name() string
}

// WorkerStart is dispatched before a worker begins serving.
type WorkerStart struct {
	Mode environment.Mode
}

func (WorkerStart) Name() string { return NameWorkerStart }

// WorkerStop is dispatched after a worker's blocking serve call returns.
type WorkerStop struct {
	Mode environment.Mode
}

func (WorkerStop) Name() string { return NameWorkerStop }

// Dispatcher broadcasts an event synchronously to every matching listener.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev Event) error
}

type Listener interface {
	Handle(ctx context.Context, ev Event) error
}

type ListenerFunc func(ctx context.Context, ev Event) error

func (f ListenerFunc) Handle(ctx context.Context, ev Event) error { return f(ctx, ev) }
