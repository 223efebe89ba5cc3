package workflowworker

import (
	"slices"

	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/kernel"
	"github.com/joeydtaylor/steeze-worker/pkg/temporal"
	"github.com/joeydtaylor/steeze-worker/pkg/worker"
	"go.uber.org/fx"
)

type params struct {
	fx.In
	Kernel     *kernel.Kernel
	Factory    temporal.WorkerFactory
	Config     config.Config
	Workflows  []WorkflowProvider `group:"workflows"`
	Activities []ActivityProvider `group:"activities"`
}

type result struct {
	fx.Out
	Worker       worker.Worker       `name:"workflow"`
	Registration worker.Registration `group:"workers"`
}

func provide(p params) result {
	var opts []Option
	if p.Config.Worker.AlwaysStop {
		opts = append(opts, WithAlwaysStop())
	}
	w := New(p.Kernel, p.Factory, slices.Values(p.Workflows), slices.Values(p.Activities), p.Config.Queues, opts...)
	return result{
		Worker:       w,
		Registration: worker.Registration{Mode: environment.ModeWorkflow, Worker: w},
	}
}

var Module = fx.Options(
	fx.Provide(provide),
)
