package deck

import "math/rand"

// Deck represents a deck of playing cards
type Deck struct {
	cards   []Card
	initial []Card
	rng     *rand.Rand
}

// NewDeck creates a new standard 52-card deck.
// The RNG is required so shuffles are deterministic under test.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	initial := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			initial = append(initial, NewCard(suit, rank))
		}
	}

	deck := &Deck{initial: initial, rng: rng}
	deck.cards = append(deck.cards, initial...)
	return deck
}

// NewStackedDeck creates a deck that deals the given cards in order,
// and restores that order on Reset. Used by tests that need exact
// board and hole cards.
func NewStackedDeck(cards []Card) *Deck {
	initial := make([]Card, len(cards))
	copy(initial, cards)
	deck := &Deck{initial: initial}
	deck.cards = append(deck.cards, initial...)
	return deck
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return // Stacked decks keep their order
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals n cards from the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}

	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Deal()
		if !ok {
			break
		}
		cards = append(cards, card)
	}

	return cards
}

// Burn discards the top card without revealing it
func (d *Deck) Burn() bool {
	_, ok := d.Deal()
	return ok
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Reset restores the deck to its initial cards and shuffles it.
// Stacked decks come back in their stacked order.
func (d *Deck) Reset() {
	d.cards = append(d.cards[:0], d.initial...)
	d.Shuffle()
}
