// Package workflowworker runs the Temporal mode: it binds every workflow and
// activity to the configured task queues and hands control to the engine.
package workflowworker

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/event"
	"github.com/joeydtaylor/steeze-worker/pkg/kernel"
	"github.com/joeydtaylor/steeze-worker/pkg/temporal"
	"go.uber.org/zap"
)

// DependencyProvider is the application context the worker resolves its
// collaborators from. It is consulted only inside Run.
type DependencyProvider interface {
	Dependencies() (kernel.Dependencies, error)
}

type Option func(*Worker)

// WithAlwaysStop emits WorkerStop on every exit from Run, including failed
// registration and engine errors.
func WithAlwaysStop() Option {
	return func(w *Worker) { w.alwaysStop = true }
}

type Worker struct {
	kernel     DependencyProvider
	factory    temporal.WorkerFactory
	workflows  iter.Seq[WorkflowProvider]
	activities iter.Seq[ActivityProvider]
	queues     config.Queues
	alwaysStop bool
}

func New(
	k DependencyProvider,
	factory temporal.WorkerFactory,
	workflows iter.Seq[WorkflowProvider],
	activities iter.Seq[ActivityProvider],
	queues config.Queues,
	opts ...Option,
) *Worker {
	if workflows == nil {
		workflows = func(func(WorkflowProvider) bool) {}
	}
	if activities == nil {
		activities = func(func(ActivityProvider) bool) {}
	}
	w := &Worker{
		kernel:     k,
		factory:    factory,
		workflows:  workflows,
		activities: activities,
		queues:     queues,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Run emits WorkerStart, registers the main then the personal queue (each when
// named), blocks in the engine and emits WorkerStop once the engine returns.
// Without WithAlwaysStop a registration or engine failure returns before
// WorkerStop is emitted.
func (w *Worker) Run(ctx context.Context) (err error) {
	deps, err := w.kernel.Dependencies()
	if err != nil {
		return fmt.Errorf("workflow worker: %w", err)
	}
	log := deps.Logger.Named("workflow")

	if err := deps.Events.Dispatch(ctx, event.WorkerStart{Mode: environment.ModeWorkflow}); err != nil {
		return err
	}

	stop := func() error {
		return deps.Events.Dispatch(context.WithoutCancel(ctx), event.WorkerStop{Mode: environment.ModeWorkflow})
	}
	if w.alwaysStop {
		defer func() {
			if serr := stop(); serr != nil {
				err = errors.Join(err, serr)
			}
		}()
	}

	bound := map[string]bool{}
	for _, q := range []string{w.queues.Main, w.queues.Personal} {
		if q == "" || bound[q] {
			continue
		}
		if err := w.bind(q, log); err != nil {
			return err
		}
		bound[q] = true
	}
	if len(bound) == 0 {
		log.Warn("no task queues configured")
	}

	if err := w.factory.Run(ctx); err != nil {
		return err
	}
	if w.alwaysStop {
		return nil
	}
	return stop()
}

func (w *Worker) bind(queue string, log *zap.Logger) error {
	qw, err := w.factory.NewWorker(queue)
	if err != nil {
		return err
	}
	var nwf, nact int
	for p := range w.workflows {
		if err := qw.RegisterWorkflowType(p.Workflow()); err != nil {
			return err
		}
		nwf++
	}
	for p := range w.activities {
		if err := qw.RegisterActivityImplementation(p.Activity()); err != nil {
			return err
		}
		nact++
	}
	log.Info("task queue bound",
		zap.String("queue", queue),
		zap.Int("workflows", nwf),
		zap.Int("activities", nact),
	)
	return nil
}
