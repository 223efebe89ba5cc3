package worker

import (
	"slices"
	"sync"

	"github.com/joeydtaylor/steeze-worker/pkg/environment"
)

// Registry maps a mode to its worker. Registering a mode twice replaces the
// earlier worker. It is safe for concurrent use, though in practice workers
// are registered once during bootstrap and looked up once at dispatch.
type Registry struct {
	mu      sync.RWMutex
	workers map[environment.Mode]Worker
}

func NewRegistry() *Registry {
	return &Registry{workers: make(map[environment.Mode]Worker)}
}

func (r *Registry) Register(mode environment.Mode, w Worker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers[mode] = w
}

// Get returns the worker registered for mode or an *UnregisteredWorkerError.
func (r *Registry) Get(mode environment.Mode) (Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workers[mode]
	if !ok {
		return nil, &UnregisteredWorkerError{Mode: mode}
	}
	return w, nil
}

// Modes lists registered modes, sorted.
func (r *Registry) Modes() []environment.Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]environment.Mode, 0, len(r.workers))
	for m := range r.workers {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}
