package config

import "go.uber.org/fx"

func queues(c Config) Queues { return c.Queues }

// Module provides Config (via LoadFromEnv) and its Queues section.
var Module = fx.Options(
	fx.Provide(LoadFromEnv),
	fx.Provide(queues),
)

// ModuleFrom is Module with an explicit config file path.
func ModuleFrom(path string) fx.Option {
	return fx.Options(
		fx.Provide(func() (Config, error) { return Load(path) }),
		fx.Provide(queues),
	)
}
