// Package workerfx assembles the complete worker process graph.
package workerfx

import (
	"github.com/joeydtaylor/steeze-worker/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/event"
	"github.com/joeydtaylor/steeze-worker/pkg/handler"
	"github.com/joeydtaylor/steeze-worker/pkg/httpworker"
	"github.com/joeydtaylor/steeze-worker/pkg/kernel"
	"github.com/joeydtaylor/steeze-worker/pkg/rpcworker"
	"github.com/joeydtaylor/steeze-worker/pkg/runner"
	"github.com/joeydtaylor/steeze-worker/pkg/temporal"
	"github.com/joeydtaylor/steeze-worker/pkg/worker"
	"github.com/joeydtaylor/steeze-worker/pkg/workflowworker"
	"go.uber.org/fx"
)

type settings struct {
	configPath string
	env        environment.Environment
	runner     bool
}

type Option func(*settings)

// WithConfigPath loads config from path instead of WORKER_CONFIG.
func WithConfigPath(path string) Option { return func(s *settings) { s.configPath = path } }

// WithEnvironment pins the mode instead of reading RR_MODE.
func WithEnvironment(env environment.Environment) Option { return func(s *settings) { s.env = env } }

// WithoutRunner builds the graph without the start/stop hook that runs the
// resolved worker.
func WithoutRunner() Option { return func(s *settings) { s.runner = false } }

// Module returns the full option set; add app workflows, activities, handlers
// and grpc services alongside.
func Module(opts ...Option) fx.Option {
	s := settings{runner: true}
	for _, o := range opts {
		o(&s)
	}

	cfg := config.Module
	if s.configPath != "" {
		cfg = config.ModuleFrom(s.configPath)
	}
	env := environment.Module
	if s.env != nil {
		pinned := s.env
		env = fx.Provide(func() environment.Environment { return pinned })
	}

	parts := []fx.Option{
		cfg,
		env,
		bundlefx.Module,
		event.Module,
		kernel.Module,
		handler.Module,
		temporal.Module,
		httpworker.Module,
		rpcworker.Module,
		workflowworker.Module,
		worker.Module,
	}
	if s.runner {
		parts = append(parts, runner.Module)
	}
	return fx.Options(parts...)
}
