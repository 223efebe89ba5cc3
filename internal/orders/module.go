package orders

import (
	"github.com/joeydtaylor/steeze-worker/pkg/config"
	"github.com/joeydtaylor/steeze-worker/pkg/handler"
	"github.com/joeydtaylor/steeze-worker/pkg/workflowworker"
	"go.temporal.io/sdk/client"
	"go.uber.org/fx"
)

// Module contributes the order workflow, its activities and the place_order
// HTTP handler.
var Module = fx.Options(
	workflowworker.AsWorkflow(OrderWorkflow),
	workflowworker.AsActivity(&ChargeCardActivity{}),
	workflowworker.AsActivity(&SendEmailActivity{}),
	fx.Provide(fx.Annotated{
		Group: "handlers",
		Target: func(c client.Client, q config.Queues) handler.Named {
			return handler.Named{Name: "place_order", Func: PlaceOrder(c, q.Main)}
		},
	}),
)
