package worker

import (
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
)

// Resolver picks the worker for the mode the environment reports. HTTP and
// workflow workers are compiled in; other known modes (RPC) are served only
// when bootstrap put a worker for them in the Registry.
type Resolver struct {
	env      environment.Environment
	http     Worker
	workflow Worker
	registry *Registry
}

// NewResolver wires the compiled-in workers. registry may be nil, in which case
// every mode other than HTTP and workflow is unsupported.
func NewResolver(env environment.Environment, http, workflow Worker, registry *Registry) *Resolver {
	return &Resolver{env: env, http: http, workflow: workflow, registry: registry}
}

// Resolve decides on env.Mode(); declared is only carried into the error.
func (r *Resolver) Resolve(declared environment.Mode) (Worker, error) {
	reported := r.env.Mode()
	switch reported {
	case environment.ModeHTTP:
		if r.http != nil {
			return r.http, nil
		}
	case environment.ModeWorkflow:
		if r.workflow != nil {
			return r.workflow, nil
		}
	}
	if r.registry != nil && reported.Known() {
		return r.registry.Get(reported)
	}
	return nil, &UnsupportedModeError{Declared: declared, Reported: reported}
}
