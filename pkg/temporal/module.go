package temporal

import (
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func provideFactory(c client.Client, log *zap.Logger) *SDKFactory {
	return NewSDKFactory(c, worker.Options{}, log.Named("temporal"))
}

var Module = fx.Options(
	fx.Provide(ProvideClient),
	fx.Provide(provideFactory),
	fx.Provide(func(f *SDKFactory) WorkerFactory { return f }),
)
