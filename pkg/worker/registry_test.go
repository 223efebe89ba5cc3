package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/joeydtaylor/steeze-worker/pkg/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// named is a comparable Worker so tests can tell instances apart.
type named string

func (named) Run(context.Context) error { return nil }

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(environment.ModeHTTP, named("http"))
	r.Register(environment.ModeWorkflow, named("temporal"))

	w, err := r.Get(environment.ModeHTTP)
	require.NoError(t, err)
	assert.Equal(t, named("http"), w)

	w, err = r.Get(environment.ModeWorkflow)
	require.NoError(t, err)
	assert.Equal(t, named("temporal"), w)
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	r.Register(environment.ModeRPC, named("first"))
	r.Register(environment.ModeRPC, named("second"))

	w, err := r.Get(environment.ModeRPC)
	require.NoError(t, err)
	assert.Equal(t, named("second"), w)
	assert.Equal(t, []environment.Mode{environment.ModeRPC}, r.Modes())
}

func TestRegistryGetUnregistered(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get(environment.ModeJobs)

	assert.ErrorIs(t, err, ErrUnregisteredWorker)
	assert.NotErrorIs(t, err, ErrUnsupportedMode)
	var ue *UnregisteredWorkerError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, environment.ModeJobs, ue.Mode)
}

func TestRegistryModesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(environment.ModeWorkflow, named("t"))
	r.Register(environment.ModeHTTP, named("h"))
	r.Register(environment.ModeRPC, named("g"))

	assert.Equal(t, []environment.Mode{"grpc", "http", "temporal"}, r.Modes())
}
