package environment

import "go.uber.org/fx"

// Module snapshots the supervisor variables as the process Environment.
var Module = fx.Options(
	fx.Provide(func() Environment { return FromGlobals() }),
)
