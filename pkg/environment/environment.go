// pkg/environment/environment.go
package environment

import (
	"os"
	"strings"
)

// Environment exposes the launch context handed over by the process supervisor.
type Environment interface {
	Mode() Mode
}

// Globals is the supervisor handshake read from process environment variables.
type Globals struct {
	RRMode    Mode
	Relay     string // RR_RELAY, e.g. "pipes" or "tcp://127.0.0.1:6001"
	RPCAddr   string // RR_RPC
	RRVersion string
}

func (g Globals) Mode() Mode { return g.RRMode }

// FromGlobals snapshots the supervisor variables once. The mode is taken as-is
// (trimmed only) so an unexpected value surfaces verbatim in resolver errors.
func FromGlobals() Globals {
	return FromLookup(os.Getenv)
}

// FromLookup is FromGlobals over an arbitrary getenv-style function.
func FromLookup(get func(string) string) Globals {
	return Globals{
		RRMode:    Mode(strings.TrimSpace(get("RR_MODE"))),
		Relay:     getOr(get, "RR_RELAY", "pipes"),
		RPCAddr:   getOr(get, "RR_RPC", "tcp://127.0.0.1:6001"),
		RRVersion: strings.TrimSpace(get("RR_VERSION")),
	}
}

// Static is a fixed Environment, handy for tests and single-mode binaries.
type Static Mode

func (s Static) Mode() Mode { return Mode(s) }

func getOr(get func(string) string, k, def string) string {
	if v := strings.TrimSpace(get(k)); v != "" {
		return v
	}
	return def
}
