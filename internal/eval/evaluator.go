package eval

import (
	"fmt"

	"github.com/feltworks/pokertable/internal/deck"
)

// Variant identifies the game variant an evaluator implements.
type Variant string

const (
	TexasHoldem Variant = "holdem"
	Omaha       Variant = "omaha"
	OmahaHiLo   Variant = "omaha-hilo"
)

// DefaultLowQualifier is the standard "eight or better" threshold for
// low hands in hi-lo variants.
const DefaultLowQualifier = 8

// Evaluator finds a player's best hand under variant-specific
// card-selection rules.
type Evaluator interface {
	// EvaluateHigh returns the best high hand from the player's hole
	// cards and the community cards.
	EvaluateHigh(hole, community []deck.Card) (Result, error)

	// EvaluateLow returns the best qualifying low hand, if any. The
	// result is invalid when no five cards qualify.
	EvaluateLow(hole, community []deck.Card, qualifier int) (LowResult, error)

	// Variant returns the variant this evaluator implements.
	Variant() Variant
}

// New creates the evaluator for a game variant.
func New(variant Variant) (Evaluator, error) {
	switch variant {
	case TexasHoldem:
		return &HoldemEvaluator{}, nil
	case Omaha, OmahaHiLo:
		return &OmahaEvaluator{variant: variant}, nil
	default:
		return nil, fmt.Errorf("unknown game variant %q", variant)
	}
}

// bestOf evaluates every candidate combination and keeps the strongest.
func bestOf(combos [][]deck.Card) Result {
	var best Result
	for i, combo := range combos {
		r := EvaluateHand(combo)
		if i == 0 || Compare(r, best) > 0 {
			best = r
		}
	}
	return best
}

// bestLowOf evaluates every candidate combination for a qualifying low
// and keeps the best one.
func bestLowOf(combos [][]deck.Card, qualifier int) LowResult {
	var best LowResult
	for _, combo := range combos {
		r := EvaluateLow(combo, qualifier)
		if !r.Valid {
			continue
		}
		if !best.Valid || CompareLow(r, best) > 0 {
			best = r
		}
	}
	return best
}
