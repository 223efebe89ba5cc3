// Package orders is the sample workflow the worker binary ships with: charge a
// card, then mail a receipt.
package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

type Order struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Email  string `json:"email"`
}

type Charge struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

type Receipt struct {
	OrderID  string `json:"orderId"`
	ChargeID string `json:"chargeId"`
	Emailed  bool   `json:"emailed"`
}

const ErrInvalidOrder = "InvalidOrder"

type ChargeCardActivity struct{}

func (*ChargeCardActivity) ChargeCard(ctx context.Context, o Order) (Charge, error) {
	if o.Amount <= 0 {
		return Charge{}, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("order %s: amount must be positive", o.ID), ErrInvalidOrder, nil)
	}
	activity.GetLogger(ctx).Info("charging card", "order", o.ID, "amount", o.Amount)
	return Charge{ID: "ch_" + o.ID, Amount: o.Amount}, nil
}

type SendEmailActivity struct{}

func (*SendEmailActivity) SendEmail(ctx context.Context, to string, c Charge) error {
	if !strings.Contains(to, "@") {
		return temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("bad recipient %q", to), ErrInvalidOrder, nil)
	}
	activity.GetLogger(ctx).Info("receipt sent", "to", to, "charge", c.ID)
	return nil
}

// OrderWorkflow charges the order and emails a receipt. Email failures do not
// fail the order.
func OrderWorkflow(ctx workflow.Context, o Order) (Receipt, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	})

	var cards *ChargeCardActivity
	var mail *SendEmailActivity

	var c Charge
	if err := workflow.ExecuteActivity(ctx, cards.ChargeCard, o).Get(ctx, &c); err != nil {
		return Receipt{}, err
	}

	r := Receipt{OrderID: o.ID, ChargeID: c.ID}
	if o.Email == "" {
		return r, nil
	}
	if err := workflow.ExecuteActivity(ctx, mail.SendEmail, o.Email, c).Get(ctx, nil); err != nil {
		workflow.GetLogger(ctx).Warn("receipt not sent", "order", o.ID, "error", err)
		return r, nil
	}
	r.Emailed = true
	return r, nil
}
