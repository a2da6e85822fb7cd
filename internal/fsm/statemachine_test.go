package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionRequiresRegisteredEdge(t *testing.T) {
	t.Parallel()

	sm := New(Waiting)
	sm.AddTransition(Waiting, Starting, nil)

	require.NoError(t, sm.Transition(Starting))
	assert.Equal(t, Starting, sm.Current())

	err := sm.Transition(Waiting)
	require.Error(t, err)
	assert.Equal(t, Starting, sm.Current(), "failed transition must not change state")
}

func TestGuardBlocksTransition(t *testing.T) {
	t.Parallel()

	allowed := false
	sm := New(Waiting)
	sm.AddTransition(Waiting, Starting, func() bool { return allowed })

	assert.False(t, sm.CanTransitionTo(Starting))
	require.Error(t, sm.Transition(Starting))

	allowed = true
	assert.True(t, sm.CanTransitionTo(Starting))
	require.NoError(t, sm.Transition(Starting))
}

func TestListenersFireOnSuccess(t *testing.T) {
	t.Parallel()

	sm := New(Waiting)
	sm.AddTransition(Waiting, Starting, nil)

	var gotOld, gotNew GameState
	fired := 0
	sm.OnChange(func(old, new GameState) {
		gotOld, gotNew = old, new
		fired++
	})

	_ = sm.Transition(Starting)
	assert.Equal(t, 1, fired)
	assert.Equal(t, Waiting, gotOld)
	assert.Equal(t, Starting, gotNew)

	// Failed transitions fire nothing
	_ = sm.Transition(Waiting)
	assert.Equal(t, 1, fired)
}

func TestResetDoesNotFireListeners(t *testing.T) {
	t.Parallel()

	sm := New(Waiting)
	sm.AddTransition(Waiting, Starting, nil)

	fired := 0
	sm.OnChange(func(old, new GameState) { fired++ })

	_ = sm.Transition(Starting)
	sm.Reset()

	assert.Equal(t, Waiting, sm.Current())
	assert.Equal(t, 1, fired, "Reset must not fire listeners")
}

func TestGameStateMachineFullCycle(t *testing.T) {
	t.Parallel()

	sm := NewGameStateMachine()
	cycle := []GameState{Starting, Preflop, Flop, Turn, River, Showdown, Finished, Waiting}
	for _, next := range cycle {
		require.NoError(t, sm.Transition(next), "transition to %s", next)
	}
	assert.Equal(t, Waiting, sm.Current())
}

func TestGameStateMachineRejectsSkipsAndBackwardEdges(t *testing.T) {
	t.Parallel()

	sm := NewGameStateMachine()

	// Waiting cannot jump straight to a street
	assert.False(t, sm.CanTransitionTo(Flop))
	require.Error(t, sm.Transition(Flop))

	_ = sm.Transition(Starting)
	_ = sm.Transition(Preflop)

	// No backward edges
	assert.False(t, sm.CanTransitionTo(Starting))
	require.Error(t, sm.Transition(Starting))
}

func TestGameStateMachineAllInSkips(t *testing.T) {
	t.Parallel()

	for _, street := range []GameState{Preflop, Flop, Turn} {
		sm := NewGameStateMachine()
		require.NoError(t, sm.Transition(Starting))
		require.NoError(t, sm.Transition(Preflop))
		if street >= Flop {
			require.NoError(t, sm.Transition(Flop))
		}
		if street >= Turn {
			require.NoError(t, sm.Transition(Turn))
		}
		require.NoError(t, sm.Transition(Showdown), "all-in skip from %s", street)
	}
}
