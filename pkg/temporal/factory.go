// Package temporal adapts the Temporal Go SDK to the worker-factory contract
// the workflow worker drives: one queue worker per task queue, registration of
// workflow types and activity implementations, and a single blocking Run.
package temporal

import (
	"context"
	"errors"
	"fmt"
)

// WorkerFactory creates per-queue workers and runs all of them.
type WorkerFactory interface {
	// NewWorker returns the worker bound to queue, creating it on first use.
	NewWorker(queue string) (QueueWorker, error)
	// Run blocks until ctx is done or the engine stops on its own.
	Run(ctx context.Context) error
}

// QueueWorker is one task queue's registration surface.
type QueueWorker interface {
	Queue() string
	RegisterWorkflowType(workflow any) error
	RegisterActivityImplementation(activity any) error
}

var ErrRegistration = errors.New("temporal: registration rejected")

const (
	KindWorkflow = "workflow"
	KindActivity = "activity"
)

// RegistrationError reports a workflow or activity the engine refused.
type RegistrationError struct {
	Queue string
	Kind  string
	Name  string
	Cause error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("temporal: register %s %q on queue %q: %v", e.Kind, e.Name, e.Queue, e.Cause)
}

func (e *RegistrationError) Unwrap() error { return e.Cause }

func (e *RegistrationError) Is(target error) bool { return target == ErrRegistration }
