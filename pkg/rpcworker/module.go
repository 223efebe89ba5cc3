package rpcworker

import (
	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/kernel"
	"github.com/joeydtaylor/steeze-worker/pkg/worker"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type params struct {
	fx.In
	Kernel   *kernel.Kernel
	Config   config.Config
	Logger   *zap.Logger
	Services []Service `group:"grpc_services"`
}

type result struct {
	fx.Out
	Worker        *Worker
	Registrations []worker.Registration `group:"workers,flatten"`
}

// provide only offers the worker to the registry when grpc is enabled, so a
// disabled grpc mode resolves to an unregistered worker.
func provide(p params) result {
	w := New(p.Kernel, p.Config.GRPC, p.Services)
	r := result{Worker: w}
	if p.Config.GRPC.Enabled {
		r.Registrations = []worker.Registration{{Mode: environment.ModeRPC, Worker: w}}
	} else {
		p.Logger.Debug("grpc worker disabled")
	}
	return r
}

var Module = fx.Options(
	fx.Provide(provide),
)
