// Package coordinator runs a sequence of steps as a saga: when a step fails,
// the steps that already succeeded are compensated in reverse order.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jcmexdev/fantasy-books/internal/storefront/orderlog"
)

// Step represents a single unit of work in the Saga.
// Each step must have a compensating action to undo its effects.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// Orchestrator manages the execution of a collection of Steps.
type Orchestrator struct {
	sagaID string
	steps  []Step
	log    orderlog.Repository // nil-safe: transitions are not recorded if nil
}

func NewOrchestrator(sagaID string, steps []Step, log orderlog.Repository) *Orchestrator {
	return &Orchestrator{sagaID: sagaID, steps: steps, log: log}
}

// Start runs the saga steps sequentially.
// If a step fails, it triggers the compensation of all previously successful steps.
func (o *Orchestrator) Start(ctx context.Context) error {
	var successfulSteps []Step

	for _, step := range o.steps {
		slog.DebugContext(ctx, "executing step", "saga_id", o.sagaID, "step", step.Name())
		if err := step.Execute(ctx); err != nil {
			slog.WarnContext(ctx, "step failed, starting rollback", "saga_id", o.sagaID, "step", step.Name(), "error", err)
			o.record(ctx, orderlog.EventFailed, step.Name(), err.Error())
			o.rollback(ctx, successfulSteps)
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
		o.record(ctx, orderlog.EventStepDone, step.Name(), "")
		// Track successful step for potential compensation (LIFO)
		successfulSteps = append(successfulSteps, step)
	}

	o.record(ctx, orderlog.EventCompleted, "", "")
	return nil
}

func (o *Orchestrator) rollback(ctx context.Context, steps []Step) {
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		detail := ""
		if err := step.Compensate(ctx); err != nil {
			slog.ErrorContext(ctx, "CRITICAL: failed to compensate step", "saga_id", o.sagaID, "step", step.Name(), "error", err)
			detail = err.Error()
		}
		o.record(ctx, orderlog.EventCompensating, step.Name(), detail)
	}
}

func (o *Orchestrator) record(ctx context.Context, event orderlog.Event, step, detail string) {
	if o.log == nil {
		return
	}
	entry := orderlog.NewEntry(ctx, o.sagaID, event)
	entry.Step = step
	entry.Detail = detail
	if err := o.log.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "order log write failed", "saga_id", o.sagaID, "error", err)
	}
}
