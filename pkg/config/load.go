// pkg/config/load.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// PathEnv names the variable holding the config file path.
const PathEnv = "WORKER_CONFIG"

// Load reads path (a missing file means defaults), applies env overrides and validates.
func Load(path string) (Config, error) {
	return load(path, os.Getenv)
}

// LoadFromEnv resolves the path from WORKER_CONFIG, falling back to worker.toml.
func LoadFromEnv() (Config, error) {
	return Load(envOr(PathEnv, "worker.toml"))
}

func load(path string, get func(string) string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, err
		default:
			if err := toml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg, get); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(c *Config, get func(string) string) error {
	str := func(k string, dst *string) {
		if v := strings.TrimSpace(get(k)); v != "" {
			*dst = v
		}
	}

	str("MAIN_QUEUE", &c.Queues.Main)
	str("PERSONAL_QUEUE", &c.Queues.Personal)
	str("TEMPORAL_ADDRESS", &c.Temporal.Address)
	str("TEMPORAL_NAMESPACE", &c.Temporal.Namespace)
	str("TEMPORAL_IDENTITY", &c.Temporal.Identity)
	str("SERVER_LISTEN_ADDRESS", &c.HTTP.Listen)
	str("SSL_SERVER_CERTIFICATE", &c.HTTP.TLSCert)
	str("SSL_SERVER_KEY", &c.HTTP.TLSKey)
	str("GRPC_LISTEN_ADDRESS", &c.GRPC.Listen)

	if v := strings.TrimSpace(get("GRPC_ENABLE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GRPC_ENABLE: %w", err)
		}
		c.GRPC.Enabled = b
	}
	if v := strings.TrimSpace(get("WORKER_ALWAYS_STOP")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("WORKER_ALWAYS_STOP: %w", err)
		}
		c.Worker.AlwaysStop = b
	}
	if v := strings.TrimSpace(get("SHUTDOWN_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		c.HTTP.ShutdownTimeout = Duration{d}
	}
	return nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
