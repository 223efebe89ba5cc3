// Package runner is the dispatch entry point: resolve one worker at start,
// run it until it returns or the app stops.
package runner

import (
	"context"
	"errors"
	"sync"

	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-worker/pkg/worker"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	outcomeOK         = "ok"
	outcomeFailed     = "failed"
	outcomeUnresolved = "unresolved"
)

type Resolver interface {
	Resolve(declared environment.Mode) (worker.Worker, error)
}

type Runner struct {
	resolver   Resolver
	env        environment.Environment
	shutdowner fx.Shutdowner
	log        *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func New(r Resolver, env environment.Environment, s fx.Shutdowner, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{resolver: r, env: env, shutdowner: s, log: log.Named("runner")}
}

// Start resolves the worker and runs it in the background. A resolution
// failure is returned so the app refuses to start.
func (r *Runner) Start(context.Context) error {
	mode := r.env.Mode()
	w, err := r.resolver.Resolve(mode)
	if err != nil {
		metrics.WorkerRuns.WithLabelValues(string(mode), outcomeUnresolved).Inc()
		r.log.Error("no worker for mode", zap.String("mode", string(mode)), zap.Error(err))
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.mu.Lock()
	r.cancel, r.done = cancel, done
	r.mu.Unlock()

	r.log.Info("worker starting", r.launchFields(mode)...)
	go func() {
		defer close(done)
		err := w.Run(ctx)

		stopping := ctx.Err() != nil
		outcome := outcomeOK
		if err != nil && !(stopping && errors.Is(err, context.Canceled)) {
			outcome = outcomeFailed
			r.log.Error("worker failed", zap.String("mode", string(mode)), zap.Error(err))
		} else {
			err = nil
			r.log.Info("worker returned", zap.String("mode", string(mode)))
		}
		metrics.WorkerRuns.WithLabelValues(string(mode), outcome).Inc()

		r.mu.Lock()
		r.err = err
		r.mu.Unlock()

		if !stopping {
			code := 0
			if err != nil {
				code = 1
			}
			if serr := r.shutdowner.Shutdown(fx.ExitCode(code)); serr != nil {
				r.log.Warn("shutdown request failed", zap.Error(serr))
			}
		}
	}()
	return nil
}

// Stop cancels the run and waits for the worker to return or ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// launchFields adds the supervisor handshake when the environment carries it.
func (r *Runner) launchFields(mode environment.Mode) []zap.Field {
	fields := []zap.Field{zap.String("mode", string(mode))}
	if g, ok := r.env.(environment.Globals); ok {
		fields = append(fields,
			zap.String("relay", g.Relay),
			zap.String("rpc", g.RPCAddr),
			zap.String("rrVersion", g.RRVersion),
		)
	}
	return fields
}
