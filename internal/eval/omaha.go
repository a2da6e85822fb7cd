package eval

import (
	"fmt"

	"github.com/feltworks/pokertable/internal/deck"
)

// OmahaEvaluator finds the best hand from exactly two of four hole
// cards and exactly three community cards. The 2+3 constraint is never
// relaxed to "best five of nine".
type OmahaEvaluator struct {
	variant Variant
}

// EvaluateHigh returns the strongest hand over all 2-of-4 hole and
// 3-of-5 community pairings. A hand that is not exactly four cards is
// a contract violation and returns an error.
func (e *OmahaEvaluator) EvaluateHigh(hole, community []deck.Card) (Result, error) {
	if len(hole) != 4 {
		return Result{}, fmt.Errorf("omaha requires exactly 4 hole cards, got %d", len(hole))
	}
	if len(community) < 3 {
		return Result{}, fmt.Errorf("omaha requires at least 3 community cards, got %d", len(community))
	}

	return bestOf(OmahaCombinations(hole, community)), nil
}

// EvaluateLow returns the best qualifying low over the same 2+3
// pairings used for the high hand.
func (e *OmahaEvaluator) EvaluateLow(hole, community []deck.Card, qualifier int) (LowResult, error) {
	if len(hole) != 4 {
		return LowResult{}, fmt.Errorf("omaha requires exactly 4 hole cards, got %d", len(hole))
	}
	if len(community) < 3 {
		return LowResult{}, fmt.Errorf("omaha requires at least 3 community cards, got %d", len(community))
	}

	return bestLowOf(OmahaCombinations(hole, community), qualifier), nil
}

// Variant returns Omaha or OmahaHiLo depending on construction.
func (e *OmahaEvaluator) Variant() Variant {
	return e.variant
}
