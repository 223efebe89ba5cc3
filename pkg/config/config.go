// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config is the worker process configuration (worker.toml + env overrides).
type Config struct {
	Service  string   `toml:"service"`
	HTTP     HTTP     `toml:"http"`
	GRPC     GRPC     `toml:"grpc"`
	Temporal Temporal `toml:"temporal"`
	Queues   Queues   `toml:"queues"`
	Worker   Worker   `toml:"worker"`
}

type HTTP struct {
	Listen          string   `toml:"listen"`
	TLSCert         string   `toml:"tls_cert"`
	TLSKey          string   `toml:"tls_key"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	Routes          []Route  `toml:"route"`
}

// Route binds an HTTP method+path to a named in-process handler.
type Route struct {
	Path      string `toml:"path"`
	Method    string `toml:"method"`
	Handler   string `toml:"handler"`
	TimeoutMS int    `toml:"timeout_ms"`
	Guard     Guard  `toml:"guard"`
}

type Guard struct {
	Roles       []string `toml:"roles"`
	Users       []string `toml:"users"`
	RequireAuth bool     `toml:"require_auth"`
}

type GRPC struct {
	Enabled        bool   `toml:"enabled"`
	Listen         string `toml:"listen"`
	MaxRecvMsgSize int    `toml:"max_recv_msg_size"`
	MaxSendMsgSize int    `toml:"max_send_msg_size"`
	Reflection     bool   `toml:"reflection"`
}

type Temporal struct {
	Address   string `toml:"address"`
	Namespace string `toml:"namespace"`
	Identity  string `toml:"identity"`
}

// Queues are the task queue names the workflow worker binds. Either may be
// empty; an empty name means that queue is not registered at all.
type Queues struct {
	Main     string `toml:"main"`
	Personal string `toml:"personal"`
}

type Worker struct {
	// AlwaysStop emits the stop lifecycle event even when the run fails.
	AlwaysStop bool `toml:"always_stop"`
}

// Duration decodes TOML strings like "15s".
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func Defaults() Config {
	return Config{
		Service: "steeze-worker",
		HTTP: HTTP{
			Listen:          ":4000",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{30 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		GRPC: GRPC{
			Listen:         ":9090",
			MaxRecvMsgSize: 16 << 20,
			MaxSendMsgSize: 16 << 20,
		},
		Temporal: Temporal{
			Address:   "temporal:7233",
			Namespace: "default",
		},
	}
}

var validMethods = map[string]struct{}{
	"GET": {}, "POST": {}, "PUT": {}, "PATCH": {}, "DELETE": {}, "HEAD": {}, "OPTIONS": {},
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.HTTP.Listen) == "" {
		errs = append(errs, errors.New("http.listen required"))
	}
	if c.GRPC.Enabled && strings.TrimSpace(c.GRPC.Listen) == "" {
		errs = append(errs, errors.New("grpc.listen required when grpc.enabled"))
	}
	if strings.TrimSpace(c.Temporal.Address) == "" {
		errs = append(errs, errors.New("temporal.address required"))
	}

	seen := map[string]struct{}{}
	for i, rt := range c.HTTP.Routes {
		if !strings.HasPrefix(rt.Path, "/") {
			errs = append(errs, fmt.Errorf("route[%d]: path %q must start with /", i, rt.Path))
		}
		m := strings.ToUpper(rt.Method)
		if _, ok := validMethods[m]; !ok {
			errs = append(errs, fmt.Errorf("route[%d]: bad method %q", i, rt.Method))
		}
		if strings.TrimSpace(rt.Handler) == "" {
			errs = append(errs, fmt.Errorf("route[%d]: handler name required", i))
		}
		if rt.TimeoutMS < 0 {
			errs = append(errs, fmt.Errorf("route[%d]: timeout_ms must be >= 0", i))
		}
		key := m + " " + rt.Path
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("route[%d]: duplicate %s", i, key))
		}
		seen[key] = struct{}{}
	}
	return errors.Join(errs...)
}
