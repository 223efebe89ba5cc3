package temporal

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/joeydtaylor/steeze-worker/pkg/middleware/metrics"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
)

// SDKFactory builds one SDK worker per task queue on a shared client.
type SDKFactory struct {
	newWorker func(queue string, opts worker.Options) worker.Worker
	opts      worker.Options
	log       *zap.Logger

	mu      sync.Mutex
	workers []*queueWorker
	byQueue map[string]*queueWorker
	fatal   chan error
}

func NewSDKFactory(c client.Client, opts worker.Options, log *zap.Logger) *SDKFactory {
	return newSDKFactory(func(queue string, o worker.Options) worker.Worker {
		return worker.New(c, queue, o)
	}, opts, log)
}

func newSDKFactory(mk func(string, worker.Options) worker.Worker, opts worker.Options, log *zap.Logger) *SDKFactory {
	if log == nil {
		log = zap.NewNop()
	}
	return &SDKFactory{
		newWorker: mk,
		opts:      opts,
		log:       log,
		byQueue:   map[string]*queueWorker{},
		fatal:     make(chan error, 1),
	}
}

func (f *SDKFactory) NewWorker(queue string) (QueueWorker, error) {
	if queue == "" {
		return nil, errors.New("temporal: task queue name required")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if qw, ok := f.byQueue[queue]; ok {
		return qw, nil
	}

	opts := f.opts
	user := opts.OnFatalError
	opts.OnFatalError = func(err error) {
		if user != nil {
			user(err)
		}
		select {
		case f.fatal <- fmt.Errorf("temporal: worker %q: %w", queue, err):
		default:
		}
	}

	qw := &queueWorker{queue: queue, sdk: f.newWorker(queue, opts), log: f.log}
	f.workers = append(f.workers, qw)
	f.byQueue[queue] = qw
	f.log.Info("task queue worker created", zap.String("queue", queue))
	return qw, nil
}

// Queues lists task queues in creation order.
func (f *SDKFactory) Queues() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.workers))
	for i, w := range f.workers {
		out[i] = w.queue
	}
	return out
}

// Run starts every queue worker, blocks until ctx is done or one of them
// reports a fatal error, then stops them in reverse start order. With no
// queues it simply waits for ctx.
func (f *SDKFactory) Run(ctx context.Context) error {
	f.mu.Lock()
	ws := slices.Clone(f.workers)
	f.mu.Unlock()

	started := make([]*queueWorker, 0, len(ws))
	stopAll := func() {
		for i := len(started) - 1; i >= 0; i-- {
			started[i].sdk.Stop()
			f.log.Info("task queue worker stopped", zap.String("queue", started[i].queue))
		}
	}

	for _, w := range ws {
		if err := w.sdk.Start(); err != nil {
			stopAll()
			return fmt.Errorf("temporal: start worker %q: %w", w.queue, err)
		}
		started = append(started, w)
		f.log.Info("task queue worker started", zap.String("queue", w.queue))
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-f.fatal:
		f.log.Error("task queue worker failed", zap.Error(err))
	}
	stopAll()
	return err
}

type queueWorker struct {
	queue string
	sdk   worker.Worker
	log   *zap.Logger
}

func (w *queueWorker) Queue() string { return w.queue }

func (w *queueWorker) RegisterWorkflowType(wf any) (err error) {
	if wf == nil {
		return &RegistrationError{Queue: w.queue, Kind: KindWorkflow, Name: NameOf(wf), Cause: errors.New("nil workflow")}
	}
	defer w.recoverRegistration(&err, KindWorkflow, wf)
	w.sdk.RegisterWorkflow(wf)
	w.registered(KindWorkflow, wf)
	return nil
}

func (w *queueWorker) RegisterActivityImplementation(a any) (err error) {
	if a == nil {
		return &RegistrationError{Queue: w.queue, Kind: KindActivity, Name: NameOf(a), Cause: errors.New("nil activity")}
	}
	defer w.recoverRegistration(&err, KindActivity, a)
	w.sdk.RegisterActivity(a)
	w.registered(KindActivity, a)
	return nil
}

func (w *queueWorker) registered(kind string, v any) {
	metrics.QueueRegistrations.WithLabelValues(w.queue, kind).Inc()
	w.log.Debug("registered", zap.String("queue", w.queue), zap.String("kind", kind), zap.String("name", NameOf(v)))
}

// The SDK panics on malformed or duplicate registrations.
func (w *queueWorker) recoverRegistration(err *error, kind string, v any) {
	r := recover()
	if r == nil {
		return
	}
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}
	*err = &RegistrationError{Queue: w.queue, Kind: kind, Name: NameOf(v), Cause: cause}
}
