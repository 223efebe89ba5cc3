// Package handler holds the in-process handlers HTTP routes are bound to by name.
package handler

import (
	"context"
	"sort"
	"sync"
)

// Func receives the raw request body and returns the response body and status.
// A zero status means the default (200 on success, 500 on error).
type Func func(ctx context.Context, in []byte) (out []byte, status int, err error)

type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{handlers: map[string]Func{}}
}

// Register makes h available under name; a later registration replaces it.
func (r *Registry) Register(name string, h Func) {
	r.mu.Lock()
	r.handlers[name] = h
	r.mu.Unlock()
}

func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handlers))
	for n := range r.handlers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
