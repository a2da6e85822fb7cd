package game

import (
	"fmt"

	"github.com/feltworks/pokertable/internal/fsm"
)

// ActionType is the kind of action a player can take.
type ActionType int

const (
	ActionFold ActionType = iota
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
	ActionAllIn
)

func (a ActionType) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionBet:
		return "bet"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "allin"
	default:
		return "unknown"
	}
}

// Action is a player action. Fold, check, call and all-in carry no
// amount; bet and raise carry the total the player is betting to.
type Action struct {
	Type   ActionType
	Amount int
}

// NewAction creates an amountless action (fold, check, call, all-in).
func NewAction(t ActionType) Action {
	return Action{Type: t}
}

// NewBet creates a bet or raise action. A non-positive amount is a
// programming error, not a game state, and panics.
func NewBet(t ActionType, amount int) Action {
	if t != ActionBet && t != ActionRaise {
		panic(fmt.Sprintf("NewBet called with action type %s", t))
	}
	if amount <= 0 {
		panic(fmt.Sprintf("bet amount must be positive, got %d", amount))
	}
	return Action{Type: t, Amount: amount}
}

// ActionResult reports the outcome of handling a player action.
// Foreseeable failures (out of turn, illegal check, short raise) are
// returned here with Success false rather than as errors.
type ActionResult struct {
	Success   bool
	Message   string
	NextState fsm.GameState
}

func failure(msg string) ActionResult {
	return ActionResult{Success: false, Message: msg}
}
