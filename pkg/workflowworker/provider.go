package workflowworker

import "go.uber.org/fx"

// WorkflowProvider yields a workflow function to register on every task queue.
type WorkflowProvider interface {
	Workflow() any
}

// ActivityProvider yields an activity function or struct of activity methods.
type ActivityProvider interface {
	Activity() any
}

type workflowValue struct{ fn any }

func (w workflowValue) Workflow() any { return w.fn }

type activityValue struct{ impl any }

func (a activityValue) Activity() any { return a.impl }

func Workflow(fn any) WorkflowProvider { return workflowValue{fn: fn} }

func Activity(impl any) ActivityProvider { return activityValue{impl: impl} }

// AsWorkflow contributes fn to the "workflows" group.
func AsWorkflow(fn any) fx.Option {
	return fx.Provide(fx.Annotated{
		Group:  "workflows",
		Target: func() WorkflowProvider { return Workflow(fn) },
	})
}

// AsActivity contributes impl to the "activities" group.
func AsActivity(impl any) fx.Option {
	return fx.Provide(fx.Annotated{
		Group:  "activities",
		Target: func() ActivityProvider { return Activity(impl) },
	})
}
