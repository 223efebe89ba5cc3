package workerfx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/joeydtaylor/steeze-worker/pkg/handler"
	"github.com/joeydtaylor/steeze-worker/pkg/httpworker"
	"github.com/joeydtaylor/steeze-worker/pkg/rpcworker"
	"github.com/joeydtaylor/steeze-worker/pkg/worker"
	"github.com/joeydtaylor/steeze-worker/pkg/workflowworker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const workerTOML = `
service = "orders"

[queues]
main = "orders"

[grpc]
enabled = true
listen = "127.0.0.1:0"

[[http.route]]
path = "/echo"
method = "POST"
handler = "echo"
`

func writeConfig(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "worker.toml")
	require.NoError(t, os.WriteFile(p, []byte(workerTOML), 0o600))
	return p
}

func echo(_ context.Context, in []byte) ([]byte, int, error) { return in, 0, nil }

func resolveFor(t *testing.T, mode environment.Mode) worker.Worker {
	t.Helper()
	t.Setenv("LOG_DIR", t.TempDir())

	var r *worker.Resolver
	app := fxtest.New(t,
		Module(
			WithConfigPath(writeConfig(t)),
			WithEnvironment(environment.Static(mode)),
			WithoutRunner(),
		),
		handler.AsHandler("echo", echo),
		fx.Populate(&r),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	w, err := r.Resolve(mode)
	require.NoError(t, err)
	return w
}

func TestModuleResolvesEveryWiredMode(t *testing.T) {
	assert.IsType(t, &httpworker.Worker{}, resolveFor(t, environment.ModeHTTP))
	assert.IsType(t, &workflowworker.Worker{}, resolveFor(t, environment.ModeWorkflow))
	assert.IsType(t, &rpcworker.Worker{}, resolveFor(t, environment.ModeRPC))
}

func TestModuleRejectsUnknownHandler(t *testing.T) {
	t.Setenv("LOG_DIR", t.TempDir())

	app := fx.New(
		Module(
			WithConfigPath(writeConfig(t)),
			WithEnvironment(environment.Static(environment.ModeHTTP)),
			WithoutRunner(),
		),
		fx.Invoke(func(*worker.Resolver) {}),
	)
	assert.Error(t, app.Err())
}
