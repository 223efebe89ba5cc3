package handler

import "go.uber.org/fx"

type Named struct {
	Name string
	Func Func
}

// AsHandler contributes h under name to the "handlers" group.
func AsHandler(name string, h Func) fx.Option {
	return fx.Provide(fx.Annotated{
		Group:  "handlers",
		Target: func() Named { return Named{Name: name, Func: h} },
	})
}

type params struct {
	fx.In
	Handlers []Named `group:"handlers"`
}

func provideRegistry(p params) *Registry {
	r := NewRegistry()
	for _, h := range p.Handlers {
		r.Register(h.Name, h.Func)
	}
	return r
}

var Module = fx.Options(
	fx.Provide(provideRegistry),
)
