package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-worker/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type noShutdown struct{ calls int }

func (s *noShutdown) Shutdown(...fx.ShutdownOption) error {
	s.calls++
	return nil
}

func app(t *testing.T, mode environment.Mode, w worker.Worker) *fxtest.App {
	return fxtest.New(t,
		fx.Supply(zap.NewNop()),
		fx.Provide(func() environment.Environment { return environment.Static(mode) }),
		fx.Provide(func() *worker.Resolver {
			reg := worker.NewRegistry()
			reg.Register(environment.ModeRPC, w)
			return worker.NewResolver(environment.Static(mode), w, w, reg)
		}),
		Module,
	)
}

func TestWorkerReturnShutsDownApp(t *testing.T) {
	tests := map[string]struct {
		err  error
		code int
	}{
		"clean":  {nil, 0},
		"failed": {errors.New("engine down"), 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := app(t, environment.ModeWorkflow, worker.Func(func(context.Context) error { return tt.err }))
			a.RequireStart()

			select {
			case sig := <-a.Wait():
				assert.Equal(t, tt.code, sig.ExitCode)
			case <-time.After(2 * time.Second):
				t.Fatal("app was not shut down")
			}
			stopErr := a.Stop(context.Background())
			if tt.err != nil {
				assert.ErrorIs(t, stopErr, tt.err)
			} else {
				assert.NoError(t, stopErr)
			}
		})
	}
}

func TestStopCancelsRunningWorker(t *testing.T) {
	started := make(chan struct{})
	a := app(t, environment.ModeHTTP, worker.Func(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))
	a.RequireStart()
	<-started

	before := testutil.ToFloat64(metrics.WorkerRuns.WithLabelValues("http", outcomeOK))
	a.RequireStop()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.WorkerRuns.WithLabelValues("http", outcomeOK)))
}

func TestUnresolvedModeFailsStart(t *testing.T) {
	env := environment.Static("roadrunner-2")
	s := &noShutdown{}
	r := New(worker.NewResolver(env, nil, nil, nil), env, s, nil)

	before := testutil.ToFloat64(metrics.WorkerRuns.WithLabelValues("roadrunner-2", outcomeUnresolved))
	err := r.Start(context.Background())
	require.ErrorIs(t, err, worker.ErrUnsupportedMode)
	assert.Contains(t, err.Error(), `"roadrunner-2"`)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.WorkerRuns.WithLabelValues("roadrunner-2", outcomeUnresolved)))

	assert.NoError(t, r.Stop(context.Background()))
	assert.Zero(t, s.calls)
}

func TestUnregisteredModeFailsStart(t *testing.T) {
	env := environment.Static(environment.ModeJobs)
	r := New(worker.NewResolver(env, nil, nil, worker.NewRegistry()), env, &noShutdown{}, nil)

	assert.ErrorIs(t, r.Start(context.Background()), worker.ErrUnregisteredWorker)
}

func TestStopTimesOut(t *testing.T) {
	env := environment.Static(environment.ModeHTTP)
	release := make(chan struct{})
	defer close(release)
	w := worker.Func(func(context.Context) error {
		<-release
		return nil
	})
	r := New(worker.NewResolver(env, w, nil, nil), env, &noShutdown{}, nil)
	require.NoError(t, r.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Stop(ctx), context.DeadlineExceeded)
}

func TestStartLogsSupervisorHandshake(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	env := environment.FromLookup(func(k string) string {
		return map[string]string{"RR_MODE": "http", "RR_RELAY": "tcp://127.0.0.1:7000", "RR_VERSION": "2024.3.0"}[k]
	})
	w := worker.Func(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	r := New(worker.NewResolver(env, w, nil, nil), env, &noShutdown{}, zap.New(core))
	require.NoError(t, r.Start(context.Background()))
	require.NoError(t, r.Stop(context.Background()))

	started := logs.FilterMessage("worker starting").All()
	require.Len(t, started, 1)
	fields := started[0].ContextMap()
	assert.Equal(t, "http", fields["mode"])
	assert.Equal(t, "tcp://127.0.0.1:7000", fields["relay"])
	assert.Equal(t, "tcp://127.0.0.1:6001", fields["rpc"])
	assert.Equal(t, "2024.3.0", fields["rrVersion"])
}
