package fsm

// GameState represents a stage in the life of a poker hand.
type GameState int

const (
	Waiting GameState = iota
	Starting
	Preflop
	Flop
	Turn
	River
	Showdown
	Finished
)

func (s GameState) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Starting:
		return "starting"
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// IsBettingStreet returns true for states in which players act.
func (s GameState) IsBettingStreet() bool {
	return s == Preflop || s == Flop || s == Turn || s == River
}

// NewGameStateMachine creates a state machine pre-registered with the
// poker hand state graph:
//
//	Waiting → Starting → Preflop → Flop → Turn → River → Showdown → Finished → Waiting
//
// plus direct edges from each betting street to Showdown, taken when
// betting can no longer occur (everyone all-in, or one player left).
// There are no backward edges; a hand only moves forward.
func NewGameStateMachine() *StateMachine[GameState] {
	sm := New(Waiting)

	sm.AddTransition(Waiting, Starting, nil)
	sm.AddTransition(Starting, Preflop, nil)
	sm.AddTransition(Preflop, Flop, nil)
	sm.AddTransition(Flop, Turn, nil)
	sm.AddTransition(Turn, River, nil)
	sm.AddTransition(River, Showdown, nil)
	sm.AddTransition(Showdown, Finished, nil)
	sm.AddTransition(Finished, Waiting, nil)

	// Early-showdown skips for all-in and single-player situations.
	sm.AddTransition(Preflop, Showdown, nil)
	sm.AddTransition(Flop, Showdown, nil)
	sm.AddTransition(Turn, Showdown, nil)

	return sm
}
