package eval

import "github.com/feltworks/pokertable/internal/deck"

// HoldemEvaluator finds the best five-card hand from any combination
// of a player's two hole cards and the community cards.
type HoldemEvaluator struct{}

// EvaluateHigh enumerates every five-card subset of the available
// cards and returns the strongest. With fewer than five cards dealt
// (pre-flop) it evaluates what is available, so BestCards may hold
// fewer than five cards.
func (e *HoldemEvaluator) EvaluateHigh(hole, community []deck.Card) (Result, error) {
	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	if len(all) <= 5 {
		return EvaluateHand(all), nil
	}

	return bestOf(Combinations(all, 5)), nil
}

// EvaluateLow returns the best qualifying low from all available
// cards. Hold'em places no restriction on which cards form the low.
func (e *HoldemEvaluator) EvaluateLow(hole, community []deck.Card, qualifier int) (LowResult, error) {
	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	return EvaluateLow(all, qualifier), nil
}

// Variant returns TexasHoldem.
func (e *HoldemEvaluator) Variant() Variant {
	return TexasHoldem
}
