package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joeydtaylor/steeze-worker/internal/orders"
	"github.com/joeydtaylor/steeze-worker/pkg/handler"
	"github.com/joeydtaylor/steeze-worker/pkg/workerfx"
	"go.uber.org/fx"
)

func echo(_ context.Context, in []byte) ([]byte, int, error) {
	if len(in) > 0 && !json.Valid(in) {
		return nil, http.StatusBadRequest, errors.New("body must be JSON")
	}
	return in, http.StatusOK, nil
}

func main() {
	fx.New(
		workerfx.Module(),
		orders.Module,
		handler.AsHandler("echo", echo),
	).Run()
}
