// Package rpcworker serves the gRPC mode. The standard health service is
// always present; application services arrive through the "grpc_services"
// group.
package rpcworker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/event"
	"github.com/joeydtaylor/steeze-worker/pkg/kernel"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

const stopTimeout = 10 * time.Second

type DependencyProvider interface {
	Dependencies() (kernel.Dependencies, error)
}

type Option func(*Worker)

func WithListener(ln net.Listener) Option {
	return func(w *Worker) { w.ln = ln }
}

type Worker struct {
	kernel   DependencyProvider
	cfg      config.GRPC
	services []Service
	ln       net.Listener
}

func New(k DependencyProvider, cfg config.GRPC, services []Service, opts ...Option) *Worker {
	w := &Worker{kernel: k, cfg: cfg, services: services}
	for _, o := range opts {
		o(w)
	}
	return w
}

func (w *Worker) server(log *zap.Logger) (*grpc.Server, *health.Server) {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(unaryLogger(log)),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    30 * time.Second,
			Timeout: 10 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             15 * time.Second,
			PermitWithoutStream: true,
		}),
	}
	if w.cfg.MaxRecvMsgSize > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(w.cfg.MaxRecvMsgSize))
	}
	if w.cfg.MaxSendMsgSize > 0 {
		opts = append(opts, grpc.MaxSendMsgSize(w.cfg.MaxSendMsgSize))
	}

	srv := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	for _, s := range w.services {
		s.Register(srv)
	}
	if w.cfg.Reflection {
		reflection.Register(srv)
	}
	return srv, hs
}

// Run serves until ctx is cancelled. Shutdown flips health to NOT_SERVING and
// drains streams, forcing a hard stop after stopTimeout.
func (w *Worker) Run(ctx context.Context) error {
	deps, err := w.kernel.Dependencies()
	if err != nil {
		return fmt.Errorf("rpc worker: %w", err)
	}
	log := deps.Logger.Named("grpc")

	if err := deps.Events.Dispatch(ctx, event.WorkerStart{Mode: environment.ModeRPC}); err != nil {
		return err
	}

	ln := w.ln
	if ln == nil {
		if ln, err = net.Listen("tcp", w.cfg.Listen); err != nil {
			return fmt.Errorf("rpc worker: listen %s: %w", w.cfg.Listen, err)
		}
	}

	srv, hs := w.server(log)
	served := make(chan error, 1)
	go func() {
		log.Info("grpc server starting", zap.String("addr", ln.Addr().String()))
		served <- srv.Serve(ln)
	}()

	select {
	case err := <-served:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("rpc worker: %w", err)
		}
	case <-ctx.Done():
		log.Info("grpc server stopping")
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(stopTimeout):
			srv.Stop()
		}
	}

	return deps.Events.Dispatch(context.WithoutCancel(ctx), event.WorkerStop{Mode: environment.ModeRPC})
}
