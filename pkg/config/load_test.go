package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "worker.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "nope.toml"), noEnv)
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "temporal:7233", cfg.Temporal.Address)
	assert.Empty(t, cfg.Queues.Main)
	assert.Empty(t, cfg.Queues.Personal)
}

func TestLoadFile(t *testing.T) {
	p := writeFile(t, `
service = "orders-worker"

[http]
listen = ":8080"
shutdown_timeout = "3s"

[[http.route]]
path = "/echo"
method = "post"
handler = "echo"
timeout_ms = 500

[[http.route]]
path = "/admin"
method = "GET"
handler = "admin"
guard = { require_auth = true, roles = ["admin"] }

[grpc]
enabled = true
listen = ":9999"

[temporal]
address = "localhost:7233"
namespace = "orders"

[queues]
main = "orders"

[worker]
always_stop = true
`)
	cfg, err := load(p, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "orders-worker", cfg.Service)
	assert.Equal(t, ":8080", cfg.HTTP.Listen)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout.Duration)
	assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout.Duration, "untouched defaults survive")
	require.Len(t, cfg.HTTP.Routes, 2)
	assert.Equal(t, "echo", cfg.HTTP.Routes[0].Handler)
	assert.Equal(t, 500, cfg.HTTP.Routes[0].TimeoutMS)
	assert.True(t, cfg.HTTP.Routes[1].Guard.RequireAuth)
	assert.Equal(t, []string{"admin"}, cfg.HTTP.Routes[1].Guard.Roles)
	assert.True(t, cfg.GRPC.Enabled)
	assert.Equal(t, ":9999", cfg.GRPC.Listen)
	assert.Equal(t, "orders", cfg.Temporal.Namespace)
	assert.Equal(t, Queues{Main: "orders"}, cfg.Queues)
	assert.True(t, cfg.Worker.AlwaysStop)
}

func TestLoadEnvOverrides(t *testing.T) {
	p := writeFile(t, `
[queues]
main = "from-file"
`)
	env := map[string]string{
		"MAIN_QUEUE":            "orders",
		"PERSONAL_QUEUE":        "host-42",
		"TEMPORAL_ADDRESS":      "temporal.internal:7233",
		"SERVER_LISTEN_ADDRESS": ":5000",
		"GRPC_ENABLE":           "true",
		"SHUTDOWN_TIMEOUT":      "2s",
		"WORKER_ALWAYS_STOP":    "1",
	}
	cfg, err := load(p, func(k string) string { return env[k] })
	require.NoError(t, err)

	assert.Equal(t, Queues{Main: "orders", Personal: "host-42"}, cfg.Queues)
	assert.Equal(t, "temporal.internal:7233", cfg.Temporal.Address)
	assert.Equal(t, ":5000", cfg.HTTP.Listen)
	assert.True(t, cfg.GRPC.Enabled)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ShutdownTimeout.Duration)
	assert.True(t, cfg.Worker.AlwaysStop)
}

func TestLoadSameQueueNames(t *testing.T) {
	cfg, err := load("", func(k string) string {
		switch k {
		case "MAIN_QUEUE", "PERSONAL_QUEUE":
			return "orders"
		}
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, Queues{Main: "orders", Personal: "orders"}, cfg.Queues)
}

func TestLoadBadEnv(t *testing.T) {
	_, err := load("", func(k string) string {
		if k == "GRPC_ENABLE" {
			return "maybe"
		}
		return ""
	})
	assert.ErrorContains(t, err, "GRPC_ENABLE")
}

func TestLoadBadTOML(t *testing.T) {
	p := writeFile(t, "[http\nlisten=")
	_, err := load(p, noEnv)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"no listen", func(c *Config) { c.HTTP.Listen = "" }, "http.listen"},
		{"grpc without listen", func(c *Config) { c.GRPC.Enabled = true; c.GRPC.Listen = "" }, "grpc.listen"},
		{"no temporal", func(c *Config) { c.Temporal.Address = " " }, "temporal.address"},
		{"bad path", func(c *Config) {
			c.HTTP.Routes = []Route{{Path: "echo", Method: "GET", Handler: "h"}}
		}, "must start with /"},
		{"bad method", func(c *Config) {
			c.HTTP.Routes = []Route{{Path: "/e", Method: "FETCH", Handler: "h"}}
		}, "bad method"},
		{"no handler", func(c *Config) {
			c.HTTP.Routes = []Route{{Path: "/e", Method: "GET"}}
		}, "handler name"},
		{"duplicate", func(c *Config) {
			c.HTTP.Routes = []Route{
				{Path: "/e", Method: "get", Handler: "a"},
				{Path: "/e", Method: "GET", Handler: "b"},
			}
		}, "duplicate GET /e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
