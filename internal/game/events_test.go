package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusSubscribeAndPublish(t *testing.T) {
	t.Parallel()

	bus := newEventBus(log.New(io.Discard))

	var got []Event
	bus.subscribe(EventGameStarted, func(ev Event) {
		got = append(got, ev)
	})

	bus.publish(GameStartedEvent{eventBase: newEventBase(), HandID: "h1"})
	bus.publish(PlayerActionEvent{eventBase: newEventBase(), PlayerID: "a"})

	require.Len(t, got, 1, "handler only sees its own event type")
	started := got[0].(GameStartedEvent)
	assert.Equal(t, "h1", started.HandID)
	assert.Equal(t, EventGameStarted, started.EventType())
	assert.False(t, started.Timestamp().IsZero())
}

func TestEventBusUnsubscribe(t *testing.T) {
	t.Parallel()

	bus := newEventBus(log.New(io.Discard))

	calls := 0
	id := bus.subscribe(EventPlayerTurn, func(Event) { calls++ })
	bus.publish(PlayerTurnEvent{eventBase: newEventBase(), PlayerID: "a"})
	bus.unsubscribe(EventPlayerTurn, id)
	bus.publish(PlayerTurnEvent{eventBase: newEventBase(), PlayerID: "a"})

	assert.Equal(t, 1, calls)
}

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := newEventBus(log.New(io.Discard))

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		bus.subscribe(EventHandComplete, func(Event) { order = append(order, i) })
	}
	bus.publish(HandCompleteEvent{eventBase: newEventBase()})

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestEventBusIsolatesPanickingHandlers(t *testing.T) {
	t.Parallel()

	bus := newEventBus(log.New(io.Discard))

	bus.subscribe(EventGameError, func(Event) { panic("handler bug") })
	survived := false
	bus.subscribe(EventGameError, func(Event) { survived = true })

	require.NotPanics(t, func() {
		bus.publish(GameErrorEvent{eventBase: newEventBase(), Message: "oops"})
	})
	assert.True(t, survived, "later handlers still run after a panic")
}
