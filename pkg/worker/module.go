package worker

import (
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"go.uber.org/fx"
)

// Registration is contributed to the "workers" value group by mode worker modules.
type Registration struct {
	Mode   environment.Mode
	Worker Worker
}

type registryParams struct {
	fx.In
	Registrations []Registration `group:"workers"`
}

func ProvideRegistry(p registryParams) *Registry {
	r := NewRegistry()
	for _, reg := range p.Registrations {
		r.Register(reg.Mode, reg.Worker)
	}
	return r
}

type resolverParams struct {
	fx.In
	Env      environment.Environment
	HTTP     Worker `name:"http" optional:"true"`
	Workflow Worker `name:"workflow" optional:"true"`
	Registry *Registry
}

func ProvideResolver(p resolverParams) *Resolver {
	return NewResolver(p.Env, p.HTTP, p.Workflow, p.Registry)
}

var Module = fx.Options(
	fx.Provide(ProvideRegistry),
	fx.Provide(ProvideResolver),
)
