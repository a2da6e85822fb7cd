package game

import (
	"fmt"
	"math/rand"

	"github.com/feltworks/pokertable/internal/deck"
)

// Dealer owns the deck lifecycle for a table: shuffling, hole cards,
// and community cards with a burn before each street.
type Dealer struct {
	deck *deck.Deck
}

// NewDealer creates a dealer with a fresh shuffled deck.
func NewDealer(rng *rand.Rand) *Dealer {
	d := deck.NewDeck(rng)
	d.Shuffle()
	return &Dealer{deck: d}
}

// NewDealerWithDeck creates a dealer around a prepared deck. Used by
// tests that stack the deal.
func NewDealerWithDeck(d *deck.Deck) *Dealer {
	return &Dealer{deck: d}
}

// Reset restores and reshuffles the deck for a new hand.
func (d *Dealer) Reset() {
	d.deck.Reset()
}

// DealHoleCards deals n cards to each player in order, one round at a
// time as in live play.
func (d *Dealer) DealHoleCards(players []*Player, n int) error {
	for round := 0; round < n; round++ {
		for _, p := range players {
			card, ok := d.deck.Deal()
			if !ok {
				return fmt.Errorf("deck exhausted dealing hole cards")
			}
			p.Hand.Add(card)
		}
	}
	return nil
}

// DealFlop burns one card and deals three to the board.
func (d *Dealer) DealFlop(t *Table) ([]deck.Card, error) {
	return d.dealStreet(t, 3)
}

// DealTurn burns one card and deals one to the board.
func (d *Dealer) DealTurn(t *Table) ([]deck.Card, error) {
	return d.dealStreet(t, 1)
}

// DealRiver burns one card and deals one to the board.
func (d *Dealer) DealRiver(t *Table) ([]deck.Card, error) {
	return d.dealStreet(t, 1)
}

func (d *Dealer) dealStreet(t *Table, n int) ([]deck.Card, error) {
	if !d.deck.Burn() {
		return nil, fmt.Errorf("deck exhausted on burn")
	}
	cards := d.deck.DealN(n)
	if len(cards) != n {
		return nil, fmt.Errorf("deck exhausted dealing street: wanted %d, got %d", n, len(cards))
	}
	t.AddCommunityCards(cards...)
	return cards, nil
}

// DealCards deals n raw cards from the deck.
func (d *Dealer) DealCards(n int) []deck.Card {
	return d.deck.DealN(n)
}

// Remaining returns the number of undealt cards.
func (d *Dealer) Remaining() int {
	return d.deck.Remaining()
}
