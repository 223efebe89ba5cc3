package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeKnown(t *testing.T) {
	for _, m := range []Mode{ModeHTTP, ModeRPC, ModeWorkflow, ModeJobs, ModeTCP, ModeCentrifuge} {
		assert.True(t, m.Known(), "mode %q", m)
	}
	for _, m := range []Mode{"", "HTTP", "temporal ", "websocket"} {
		assert.False(t, m.Known(), "mode %q", m)
	}
}

func TestFromLookup(t *testing.T) {
	env := map[string]string{
		"RR_MODE":    " temporal ",
		"RR_RPC":     "tcp://10.0.0.1:6001",
		"RR_VERSION": "2024.3.0",
	}
	g := FromLookup(func(k string) string { return env[k] })

	assert.Equal(t, ModeWorkflow, g.Mode())
	assert.Equal(t, "pipes", g.Relay)
	assert.Equal(t, "tcp://10.0.0.1:6001", g.RPCAddr)
	assert.Equal(t, "2024.3.0", g.RRVersion)
}

func TestFromGlobals(t *testing.T) {
	t.Setenv("RR_MODE", "http")
	t.Setenv("RR_RELAY", "tcp://127.0.0.1:7000")

	g := FromGlobals()
	assert.Equal(t, ModeHTTP, g.Mode())
	assert.Equal(t, "tcp://127.0.0.1:7000", g.Relay)
}

func TestStatic(t *testing.T) {
	assert.Equal(t, ModeRPC, Static(ModeRPC).Mode())
}
