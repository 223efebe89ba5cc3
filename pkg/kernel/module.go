package kernel

import (
	"github.com/joeydtaylor/steeze-worker/pkg/event"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func boot(k *Kernel, d event.Dispatcher, l *zap.Logger) {
	k.Boot(Dependencies{Events: d, Logger: l})
}

var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(boot),
)
