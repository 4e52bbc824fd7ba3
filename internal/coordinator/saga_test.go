package coordinator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/fantasy-books/internal/storefront/orderlog"
)

type fakeStep struct {
	name       string
	failWith   error
	calls      *[]string
	compensErr error
}

func (s fakeStep) Name() string { return s.name }

func (s fakeStep) Execute(context.Context) error {
	*s.calls = append(*s.calls, "exec:"+s.name)
	return s.failWith
}

func (s fakeStep) Compensate(context.Context) error {
	*s.calls = append(*s.calls, "comp:"+s.name)
	return s.compensErr
}

func TestOrchestrator_AllStepsSucceed(t *testing.T) {
	var calls []string
	log := orderlog.NewMemory()
	steps := []Step{
		fakeStep{name: "a", calls: &calls},
		fakeStep{name: "b", calls: &calls},
	}

	require.NoError(t, NewOrchestrator("ORD-1", steps, log).Start(context.Background()))
	assert.Equal(t, []string{"exec:a", "exec:b"}, calls)

	history, err := log.History(context.Background(), "ORD-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, orderlog.EventStepDone, history[0].Event)
	assert.Equal(t, "a", history[0].Step)
	assert.Equal(t, orderlog.EventCompleted, history[2].Event)
}

func TestOrchestrator_CompensatesInReverse(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	log := orderlog.NewMemory()
	steps := []Step{
		fakeStep{name: "a", calls: &calls},
		fakeStep{name: "b", calls: &calls, compensErr: errors.New("stuck")},
		fakeStep{name: "c", calls: &calls, failWith: boom},
		fakeStep{name: "d", calls: &calls},
	}

	err := NewOrchestrator("ORD-2", steps, log).Start(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "c:")
	assert.Equal(t, []string{"exec:a", "exec:b", "exec:c", "comp:b", "comp:a"}, calls)

	history, err := log.History(context.Background(), "ORD-2")
	require.NoError(t, err)
	events := make([]orderlog.Event, len(history))
	for i, e := range history {
		events[i] = e.Event
	}
	assert.Equal(t, []orderlog.Event{
		orderlog.EventStepDone,
		orderlog.EventStepDone,
		orderlog.EventFailed,
		orderlog.EventCompensating,
		orderlog.EventCompensating,
	}, events)
	assert.Equal(t, "stuck", history[3].Detail)
}

func TestOrchestrator_NilLog(t *testing.T) {
	var calls []string
	steps := []Step{fakeStep{name: "a", calls: &calls}}
	assert.NoError(t, NewOrchestrator("x", steps, nil).Start(context.Background()))
}
