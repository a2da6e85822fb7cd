package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/feltworks/pokertable/internal/deck"
	"github.com/feltworks/pokertable/internal/fsm"
)

// EventType identifies a game event with type safety.
type EventType string

const (
	EventGameStarted   EventType = "game_started"
	EventPlayerAction  EventType = "player_action"
	EventStateChanged  EventType = "state_changed"
	EventRoundComplete EventType = "round_complete"
	EventHandComplete  EventType = "hand_complete"
	EventGameError     EventType = "game_error"
	EventPlayerTurn    EventType = "player_turn"
)

func (et EventType) String() string {
	return string(et)
}

// Event is any event emitted by the engine.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

type eventBase struct {
	at time.Time
}

func (e eventBase) Timestamp() time.Time { return e.at }

func newEventBase() eventBase {
	return eventBase{at: time.Now()}
}

// GameStartedEvent is emitted when a new hand begins.
type GameStartedEvent struct {
	eventBase
	HandID     string
	Players    []string
	SmallBlind int
	BigBlind   int
}

func (e GameStartedEvent) EventType() EventType { return EventGameStarted }

// PlayerActionEvent is emitted after a successful player action.
type PlayerActionEvent struct {
	eventBase
	PlayerID string
	Action   Action
	Amount   int
	State    fsm.GameState
	PotAfter int
}

func (e PlayerActionEvent) EventType() EventType { return EventPlayerAction }

// StateChangedEvent is emitted on every state transition, carrying any
// community cards dealt for the new street.
type StateChangedEvent struct {
	eventBase
	OldState   fsm.GameState
	NewState   fsm.GameState
	DealtCards []deck.Card
}

func (e StateChangedEvent) EventType() EventType { return EventStateChanged }

// RoundCompleteEvent is emitted when a betting round closes.
type RoundCompleteEvent struct {
	eventBase
	State fsm.GameState
	Pot   int
}

func (e RoundCompleteEvent) EventType() EventType { return EventRoundComplete }

// Winner describes one player's share of a resolved hand.
type Winner struct {
	PlayerID  string
	Amount    int
	HandRank  string
	RankValue int
	BestCards []deck.Card
	Low       bool // Won with a qualifying low hand (hi-lo only)
}

// HandCompleteEvent is emitted when a hand resolves, with the winner
// list and the total pot paid out.
type HandCompleteEvent struct {
	eventBase
	HandID  string
	Winners []Winner
	Pot     int
	Board   []deck.Card
}

func (e HandCompleteEvent) EventType() EventType { return EventHandComplete }

// GameErrorEvent is emitted for engine-level failures worth observing.
type GameErrorEvent struct {
	eventBase
	Message string
}

func (e GameErrorEvent) EventType() EventType { return EventGameError }

// PlayerTurnEvent is emitted when a player becomes the one to act.
type PlayerTurnEvent struct {
	eventBase
	PlayerID       string
	TimeoutSeconds int
}

func (e PlayerTurnEvent) EventType() EventType { return EventPlayerTurn }

// Handler receives events of the type it subscribed to.
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed.
type Subscription int

// eventBus is a per-engine typed publish/subscribe fan-out. Dispatch
// is synchronous; a panicking handler is recovered and logged so it
// cannot abort the engine's own state transition.
type eventBus struct {
	logger   *log.Logger
	nextID   Subscription
	handlers map[EventType]map[Subscription]Handler
}

func newEventBus(logger *log.Logger) *eventBus {
	return &eventBus{
		logger:   logger,
		handlers: make(map[EventType]map[Subscription]Handler),
	}
}

func (b *eventBus) subscribe(et EventType, h Handler) Subscription {
	b.nextID++
	id := b.nextID
	if b.handlers[et] == nil {
		b.handlers[et] = make(map[Subscription]Handler)
	}
	b.handlers[et][id] = h
	return id
}

func (b *eventBus) unsubscribe(et EventType, id Subscription) {
	delete(b.handlers[et], id)
}

// publish dispatches to handlers in subscription order. Map iteration
// order is random; sorted subscription ids keep delivery deterministic.
func (b *eventBus) publish(event Event) {
	subs := b.handlers[event.EventType()]
	ids := make([]Subscription, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	for _, id := range ids {
		b.dispatch(event, id, subs[id])
	}
}

func (b *eventBus) dispatch(event Event, id Subscription, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event", event.EventType(),
				"subscription", id,
				"panic", r)
		}
	}()
	h(event)
}
