package runner

import (
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/worker"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func provide(r *worker.Resolver, env environment.Environment, s fx.Shutdowner, log *zap.Logger) *Runner {
	return New(r, env, s, log)
}

func register(lc fx.Lifecycle, r *Runner) {
	lc.Append(fx.Hook{OnStart: r.Start, OnStop: r.Stop})
}

var Module = fx.Options(
	fx.Provide(provide),
	fx.Invoke(register),
)
