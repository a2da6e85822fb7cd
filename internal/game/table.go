package game

import (
	"fmt"

	"github.com/feltworks/pokertable/internal/deck"
)

// Table holds the seats, community cards and current table bet for a
// single game. One table belongs to exactly one engine.
type Table struct {
	seats          []*Player
	maxSeats       int
	CommunityCards []deck.Card
	CurrentBet     int
}

// NewTable creates a table with the given number of seats.
func NewTable(maxSeats int) *Table {
	return &Table{maxSeats: maxSeats}
}

// SeatPlayer adds a player to the first free seat.
func (t *Table) SeatPlayer(p *Player) error {
	if len(t.seats) >= t.maxSeats {
		return fmt.Errorf("table is full (%d seats)", t.maxSeats)
	}
	for _, seated := range t.seats {
		if seated.ID == p.ID {
			return fmt.Errorf("player %s is already seated", p.ID)
		}
	}
	p.Seat = len(t.seats)
	t.seats = append(t.seats, p)
	return nil
}

// RemovePlayer removes a player by id and renumbers seats.
func (t *Table) RemovePlayer(id string) bool {
	for i, p := range t.seats {
		if p.ID == id {
			t.seats = append(t.seats[:i], t.seats[i+1:]...)
			for j := i; j < len(t.seats); j++ {
				t.seats[j].Seat = j
			}
			return true
		}
	}
	return false
}

// Players returns all seated players in seat order.
func (t *Table) Players() []*Player {
	return t.seats
}

// Player returns the seated player with the given id, or nil.
func (t *Table) Player(id string) *Player {
	for _, p := range t.seats {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ActivePlayers returns the players who can still act in the hand.
func (t *Table) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(t.seats))
	for _, p := range t.seats {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// PlayersInHand returns the players with a claim on the pot (active or
// all-in).
func (t *Table) PlayersInHand() []*Player {
	in := make([]*Player, 0, len(t.seats))
	for _, p := range t.seats {
		if p.InHand() {
			in = append(in, p)
		}
	}
	return in
}

// AddCommunityCards appends newly dealt community cards.
func (t *Table) AddCommunityCards(cards ...deck.Card) {
	t.CommunityCards = append(t.CommunityCards, cards...)
}

// ClearCommunityCards removes the board for a new hand.
func (t *Table) ClearCommunityCards() {
	t.CommunityCards = t.CommunityCards[:0]
}

// TotalChips sums every seated player's stack. Used together with the
// pot total to verify chip conservation.
func (t *Table) TotalChips() int {
	total := 0
	for _, p := range t.seats {
		total += p.Chips
	}
	return total
}
