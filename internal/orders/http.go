package orders

import (
	"context"
	"errors"
	"net/http"

	"github.com/joeydtaylor/steeze-worker/pkg/handler"
	"go.temporal.io/sdk/client"
)

type Placed struct {
	WorkflowID string `json:"workflowId"`
	RunID      string `json:"runId"`
}

// PlaceOrder starts OrderWorkflow on queue. The workflow ID is derived from the
// order ID so a retried request does not charge twice.
func PlaceOrder(c client.Client, queue string) handler.Func {
	return handler.JSON(func(ctx context.Context, o Order) (Placed, int, error) {
		if o.ID == "" {
			return Placed{}, http.StatusBadRequest, errors.New("order id required")
		}
		if queue == "" {
			return Placed{}, http.StatusServiceUnavailable, errors.New("no task queue configured")
		}
		run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
			ID:        "order-" + o.ID,
			TaskQueue: queue,
		}, OrderWorkflow, o)
		if err != nil {
			return Placed{}, http.StatusBadGateway, err
		}
		return Placed{WorkflowID: run.GetID(), RunID: run.GetRunID()}, http.StatusAccepted, nil
	})
}
