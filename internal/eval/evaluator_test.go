package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feltworks/pokertable/internal/deck"
)

func TestFactory(t *testing.T) {
	t.Parallel()

	holdem, err := New(TexasHoldem)
	require.NoError(t, err)
	assert.Equal(t, TexasHoldem, holdem.Variant())

	omaha, err := New(Omaha)
	require.NoError(t, err)
	assert.Equal(t, Omaha, omaha.Variant())

	hilo, err := New(OmahaHiLo)
	require.NoError(t, err)
	assert.Equal(t, OmahaHiLo, hilo.Variant())

	_, err = New(Variant("stud"))
	require.Error(t, err)
}

func TestHoldemBestFiveOfSeven(t *testing.T) {
	t.Parallel()

	e := &HoldemEvaluator{}

	// Board pairs the hole ace and carries a king: best hand is aces
	// and kings, not the bare board pair.
	r, err := e.EvaluateHigh(
		deck.MustParseCards("AsKd"),
		deck.MustParseCards("AhKs7d4c2h"),
	)
	require.NoError(t, err)
	assert.Equal(t, TwoPair, r.Category)
	assert.Equal(t, []int{14, 13, 7}, r.Tiebreakers)
	assert.Len(t, r.BestCards, 5)

	// Four to a flush on board plus one in the hole
	r, err = e.EvaluateHigh(
		deck.MustParseCards("Qh2c"),
		deck.MustParseCards("AhKh7h4h9s"),
	)
	require.NoError(t, err)
	assert.Equal(t, Flush, r.Category)
	assert.Equal(t, []int{14, 13, 12, 7, 4}, r.Tiebreakers)
}

func TestHoldemPreflopPartialHand(t *testing.T) {
	t.Parallel()

	e := &HoldemEvaluator{}

	r, err := e.EvaluateHigh(deck.MustParseCards("AsAd"), nil)
	require.NoError(t, err)
	assert.Equal(t, OnePair, r.Category)
	assert.Len(t, r.BestCards, 2, "pre-flop best cards may be fewer than five")

	r, err = e.EvaluateHigh(deck.MustParseCards("AsKd"), nil)
	require.NoError(t, err)
	assert.Equal(t, HighCard, r.Category)
}

func TestOmahaRequiresExactlyFourHoleCards(t *testing.T) {
	t.Parallel()

	e := &OmahaEvaluator{variant: Omaha}
	board := deck.MustParseCards("AhKh7h4h9s")

	_, err := e.EvaluateHigh(deck.MustParseCards("AsKd"), board)
	require.Error(t, err)

	_, err = e.EvaluateHigh(deck.MustParseCards("AsKdQs2c3h"), board)
	require.Error(t, err)

	_, err = e.EvaluateLow(deck.MustParseCards("AsKd"), board, DefaultLowQualifier)
	require.Error(t, err)
}

func TestOmahaTwoPlusThreeConstraint(t *testing.T) {
	t.Parallel()

	e := &OmahaEvaluator{variant: Omaha}

	// Four hearts on board but only one in the hole: no flush in
	// Omaha, because exactly two hole cards must play.
	hole := deck.MustParseCards("Ah2c3d4s")
	board := deck.MustParseCards("KhQhJh9h2s")

	r, err := e.EvaluateHigh(hole, board)
	require.NoError(t, err)
	assert.NotEqual(t, Flush, r.Category, "one suited hole card cannot make an Omaha flush")

	holeSet := make(map[deck.Card]bool)
	for _, c := range hole {
		holeSet[c] = true
	}
	fromHole := 0
	for _, c := range r.BestCards {
		if holeSet[c] {
			fromHole++
		}
	}
	assert.Equal(t, 2, fromHole)
	assert.Len(t, r.BestCards, 5)
}

func TestOmahaHiLo(t *testing.T) {
	t.Parallel()

	e := &OmahaEvaluator{variant: OmahaHiLo}

	// A-2 in the hole with three low board cards: nut low qualifies.
	hole := deck.MustParseCards("As2dKhKs")
	board := deck.MustParseCards("3h4c8dQsJc")

	low, err := e.EvaluateLow(hole, board, DefaultLowQualifier)
	require.NoError(t, err)
	require.True(t, low.Valid)
	assert.Equal(t, []int{8, 4, 3, 2, 1}, low.Tiebreakers)

	// High board only: no qualifying low.
	low, err = e.EvaluateLow(hole, deck.MustParseCards("KdQdJh9s9c"), DefaultLowQualifier)
	require.NoError(t, err)
	assert.False(t, low.Valid)
}
