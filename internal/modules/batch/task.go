package batch

import (
	"context"
)

// Task adapts a batch spec to the queue's Task interface.
type Task struct {
	Runner *Runner
	Spec   Spec
}

func (t *Task) Execute(ctx context.Context) {
	t.Runner.Run(ctx, t.Spec)
}
