// Package kernel is the application context mode workers reach back into for
// their shared collaborators. Workers hold the Kernel and ask for Dependencies
// only once they start running, so constructing a worker never requires the
// dependency set to exist yet.
package kernel

import (
	"errors"
	"sync"

	"github.com/joeydtaylor/steeze-worker/pkg/event"
	"go.uber.org/zap"
)

var ErrNotBooted = errors.New("kernel: dependencies requested before boot")

type Dependencies struct {
	Events event.Dispatcher
	Logger *zap.Logger
}

type Kernel struct {
	mu     sync.RWMutex
	deps   Dependencies
	booted bool
}

func New() *Kernel { return &Kernel{} }

// Boot publishes the dependency set. A second Boot replaces the first.
func (k *Kernel) Boot(d Dependencies) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	k.mu.Lock()
	k.deps = d
	k.booted = true
	k.mu.Unlock()
}

func (k *Kernel) Dependencies() (Dependencies, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if !k.booted {
		return Dependencies{}, ErrNotBooted
	}
	return k.deps, nil
}
