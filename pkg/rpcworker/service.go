package rpcworker

import (
	"go.uber.org/fx"
	"google.golang.org/grpc"
)

// Service registers one or more gRPC services on the worker's server.
type Service interface {
	Register(s grpc.ServiceRegistrar)
}

type ServiceFunc func(s grpc.ServiceRegistrar)

func (f ServiceFunc) Register(s grpc.ServiceRegistrar) { f(s) }

// AsService contributes fn to the "grpc_services" group.
func AsService(fn ServiceFunc) fx.Option {
	return fx.Provide(fx.Annotated{
		Group:  "grpc_services",
		Target: func() Service { return fn },
	})
}
