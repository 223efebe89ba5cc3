package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func constant(body string) Func {
	return func(context.Context, []byte) ([]byte, int, error) { return []byte(body), 0, nil }
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register("b", constant("1"))
	r.Register("a", constant("2"))
	r.Register("b", constant("3"))

	h, ok := r.Lookup("b")
	require.True(t, ok)
	out, _, _ := h(context.Background(), nil)
	assert.Equal(t, "3", string(out))

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestModuleCollectsHandlers(t *testing.T) {
	var r *Registry
	app := fxtest.New(t,
		Module,
		AsHandler("echo", constant("e")),
		AsHandler("ping", constant("p")),
		fx.Populate(&r),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, []string{"echo", "ping"}, r.Names())
}
