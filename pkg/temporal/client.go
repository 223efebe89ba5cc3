package temporal

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"go.temporal.io/sdk/client"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ClientOptions maps the temporal config section onto SDK client options.
func ClientOptions(cfg config.Temporal, log *zap.Logger) client.Options {
	return client.Options{
		HostPort:  cfg.Address,
		Namespace: cfg.Namespace,
		Identity:  cfg.Identity,
		Logger:    NewLogger(log),
	}
}

// ProvideClient dials lazily so the process can boot in non-temporal modes
// without a reachable frontend.
func ProvideClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (client.Client, error) {
	c, err := client.NewLazyClient(ClientOptions(cfg.Temporal, log))
	if err != nil {
		return nil, fmt.Errorf("temporal: client %s: %w", cfg.Temporal.Address, err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.Close()
			return nil
		},
	})
	return c, nil
}
