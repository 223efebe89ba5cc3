// Package worker selects and holds the one mode worker a process runs.
//
// A Worker serves a single environment.Mode for the lifetime of the process.
// The Registry maps modes to workers, and the Resolver turns the mode reported
// by the process environment into the worker to run.
package worker

import "context"

// Worker is the run contract shared by every mode worker. Run blocks until
// the worker is done serving and returns nil on normal completion.
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a function to Worker.
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error { return f(ctx) }
