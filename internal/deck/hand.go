package deck

import "strings"

// Hand is an ordered container for a player's private cards.
// It is cleared and refilled by the dealer at the start of each hand.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, 4)}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends cards to the hand, preserving deal order
func (h *Hand) Add(cards ...Card) {
	h.cards = append(h.cards, cards...)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Clear removes all cards from the hand
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// String returns the hand as space-separated cards (e.g., "A♠ K♦")
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
