package httpworker

import (
	"net/http"

	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/handler"
	"github.com/joeydtaylor/steeze-worker/pkg/kernel"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-worker/pkg/transport/httpx"
	"github.com/joeydtaylor/steeze-worker/pkg/worker"
	"go.uber.org/fx"
)

type routerParams struct {
	fx.In
	Config   config.Config
	Auth     *auth.Middleware   `optional:"true"`
	Access   *logger.Middleware `optional:"true"`
	Metrics  http.Handler       `name:"metrics" optional:"true"`
	Handlers *handler.Registry
}

type routerResult struct {
	fx.Out
	App http.Handler `name:"app"`
}

func provideRouter(p routerParams) (routerResult, error) {
	h, err := BuildRouter(p.Config.HTTP.Routes, RouterDeps{
		Router:   httpx.NewChi(),
		Auth:     p.Auth,
		Access:   p.Access,
		Metrics:  p.Metrics,
		Handlers: p.Handlers,
	})
	return routerResult{App: h}, err
}

type workerParams struct {
	fx.In
	Kernel *kernel.Kernel
	Config config.Config
	App    http.Handler `name:"app"`
}

type workerResult struct {
	fx.Out
	Worker       worker.Worker       `name:"http"`
	Registration worker.Registration `group:"workers"`
}

func provideWorker(p workerParams) workerResult {
	w := New(p.Kernel, p.Config.HTTP, p.App)
	return workerResult{
		Worker:       w,
		Registration: worker.Registration{Mode: environment.ModeHTTP, Worker: w},
	}
}

var Module = fx.Options(
	fx.Provide(provideRouter),
	fx.Provide(provideWorker),
)
