// Package httpworker serves the synchronous HTTP mode: a single net/http server
// in front of the route table, running until its context is cancelled.
package httpworker

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/event"
	"github.com/joeydtaylor/steeze-worker/pkg/kernel"
	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type DependencyProvider interface {
	Dependencies() (kernel.Dependencies, error)
}

type Option func(*Worker)

// WithListener serves on ln instead of listening on the configured address.
func WithListener(ln net.Listener) Option {
	return func(w *Worker) { w.ln = ln }
}

type Worker struct {
	kernel  DependencyProvider
	cfg     config.HTTP
	handler http.Handler
	ln      net.Listener
}

func New(k DependencyProvider, cfg config.HTTP, h http.Handler, opts ...Option) *Worker {
	w := &Worker{kernel: k, cfg: cfg, handler: h}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout. TLS 1.3 is used when both the certificate
// and key files exist.
func (w *Worker) Run(ctx context.Context) error {
	deps, err := w.kernel.Dependencies()
	if err != nil {
		return fmt.Errorf("http worker: %w", err)
	}
	log := deps.Logger.Named("http")

	if err := deps.Events.Dispatch(ctx, event.WorkerStart{Mode: environment.ModeHTTP}); err != nil {
		return err
	}

	ln := w.ln
	if ln == nil {
		if ln, err = net.Listen("tcp", w.cfg.Listen); err != nil {
			return fmt.Errorf("http worker: listen %s: %w", w.cfg.Listen, err)
		}
	}

	srv := &http.Server{
		Handler:      w.handler,
		ReadTimeout:  w.cfg.ReadTimeout.Duration,
		WriteTimeout: w.cfg.WriteTimeout.Duration,
		IdleTimeout:  w.cfg.IdleTimeout.Duration,
		ErrorLog:     zap.NewStdLog(log),
	}

	useTLS := fileExists(w.cfg.TLSCert) && fileExists(w.cfg.TLSKey)
	served := make(chan error, 1)
	go func() {
		if useTLS {
			log.Info("server starting (TLS)", zap.String("addr", ln.Addr().String()), zap.String("cert", w.cfg.TLSCert))
			srv.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13}
			served <- srv.ServeTLS(ln, w.cfg.TLSCert, w.cfg.TLSKey)
			return
		}
		log.Info("server starting (PLAINTEXT)", zap.String("addr", ln.Addr().String()))
		served <- srv.Serve(ln)
	}()

	select {
	case err := <-served:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http worker: %w", err)
		}
	case <-ctx.Done():
		log.Info("server stopping")
		grace := w.cfg.ShutdownTimeout.Duration
		if grace <= 0 {
			grace = defaultShutdownTimeout
		}
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), grace)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("http worker: shutdown: %w", err)
		}
	}

	return deps.Events.Dispatch(context.WithoutCancel(ctx), event.WorkerStop{Mode: environment.ModeHTTP})
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
