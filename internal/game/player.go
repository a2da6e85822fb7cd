package game

import "github.com/feltworks/pokertable/internal/deck"

// PlayerStatus tracks what a player can do in the current hand.
// Transitions are one-directional within a hand: Active→Folded and
// Active→AllIn are terminal until the next hand starts.
type PlayerStatus int

const (
	StatusSittingOut PlayerStatus = iota
	StatusActive
	StatusFolded
	StatusAllIn
)

func (s PlayerStatus) String() string {
	switch s {
	case StatusSittingOut:
		return "sitting_out"
	case StatusActive:
		return "active"
	case StatusFolded:
		return "folded"
	case StatusAllIn:
		return "all_in"
	default:
		return "unknown"
	}
}

// Player represents a seated player. The player persists across hands;
// only the per-hand fields (hand, bets, status) reset between hands.
type Player struct {
	ID         string
	Name       string
	Seat       int
	Chips      int
	Hand       *deck.Hand
	Status     PlayerStatus
	CurrentBet int // Chips committed in the current betting round
	TotalBet   int // Chips committed in the whole hand
}

// NewPlayer creates a player with the given id, name and starting stack.
func NewPlayer(id, name string, chips int) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Chips:  chips,
		Hand:   deck.NewHand(),
		Status: StatusSittingOut,
	}
}

// IsActive returns true if the player can still act in the hand.
func (p *Player) IsActive() bool {
	return p.Status == StatusActive
}

// InHand returns true if the player still has a claim on the pot.
func (p *Player) InHand() bool {
	return p.Status == StatusActive || p.Status == StatusAllIn
}

// ResetForHand clears per-hand state at the start of a new hand.
// Players with no chips sit out.
func (p *Player) ResetForHand() {
	p.Hand.Clear()
	p.CurrentBet = 0
	p.TotalBet = 0
	if p.Chips > 0 {
		p.Status = StatusActive
	} else {
		p.Status = StatusSittingOut
	}
}

// PlaceBet moves up to amount from the player's stack into their
// current bet, clamped to the stack. Returns the amount actually
// placed. Going broke marks the player all-in.
func (p *Player) PlaceBet(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	p.CurrentBet += amount
	p.TotalBet += amount
	if p.Chips == 0 && p.Status == StatusActive {
		p.Status = StatusAllIn
	}
	return amount
}
