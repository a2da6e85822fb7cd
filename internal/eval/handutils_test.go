package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feltworks/pokertable/internal/deck"
)

func TestEvaluateHandCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cards       string
		category    Category
		tiebreakers []int
	}{
		{"royal flush", "AsKsQsJsTs", RoyalFlush, []int{14}},
		{"straight flush", "9h8h7h6h5h", StraightFlush, []int{9}},
		{"steel wheel is a straight flush", "Ad5d4d3d2d", StraightFlush, []int{5}},
		{"four of a kind", "QsQhQdQc2s", FourOfAKind, []int{12, 2}},
		{"full house", "JsJhJd8c8s", FullHouse, []int{11, 8}},
		{"flush", "AhJh9h6h3h", Flush, []int{14, 11, 9, 6, 3}},
		{"straight", "Th9c8d7s6h", Straight, []int{10}},
		{"wheel", "As2h3d4c5s", Straight, []int{5}},
		{"three of a kind", "7s7h7dKc2s", ThreeOfAKind, []int{7, 13, 2}},
		{"two pair", "KsKh4d4cAs", TwoPair, []int{13, 4, 14}},
		{"one pair", "9s9hAdJc5s", OnePair, []int{9, 14, 11, 5}},
		{"high card", "AsJh8d5c2s", HighCard, []int{14, 11, 8, 5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := EvaluateHand(deck.MustParseCards(tt.cards))
			assert.Equal(t, tt.category, r.Category)
			assert.Equal(t, int(tt.category), r.RankValue)
			assert.Equal(t, tt.tiebreakers, r.Tiebreakers)
			assert.Len(t, r.BestCards, 5)
		})
	}
}

func TestWheelCardOrderAndRanking(t *testing.T) {
	t.Parallel()

	wheel := EvaluateHand(deck.MustParseCards("As2h3d4c5s"))
	require.Equal(t, Straight, wheel.Category)

	// The five leads and the ace comes last: the wheel is five-high.
	assert.Equal(t, deck.Five, wheel.BestCards[0].Rank)
	assert.Equal(t, deck.Ace, wheel.BestCards[4].Rank)
	assert.Equal(t, []int{5}, wheel.Tiebreakers)

	sixHigh := EvaluateHand(deck.MustParseCards("2h3d4c5s6h"))
	require.Equal(t, Straight, sixHigh.Category)
	assert.Negative(t, Compare(wheel, sixHigh), "wheel must lose to a six-high straight")
}

func TestCompareTotalOrder(t *testing.T) {
	t.Parallel()

	straight := EvaluateHand(deck.MustParseCards("Th9c8d7s6h"))
	pair := EvaluateHand(deck.MustParseCards("AsAhKdQc9s"))

	// Any straight beats any pair, regardless of tiebreakers
	assert.Positive(t, Compare(straight, pair))
	assert.Negative(t, Compare(pair, straight))

	// Antisymmetry within a category
	kingsUp := EvaluateHand(deck.MustParseCards("KsKh4d4cAs"))
	queensUp := EvaluateHand(deck.MustParseCards("QsQh4d4cAs"))
	assert.Equal(t, Compare(kingsUp, queensUp), -Compare(queensUp, kingsUp))
	assert.Positive(t, Compare(kingsUp, queensUp))

	// Exact tie
	a := EvaluateHand(deck.MustParseCards("AsKh8d5c2s"))
	b := EvaluateHand(deck.MustParseCards("AdKc8s5h2d"))
	assert.Zero(t, Compare(a, b))
}

func TestCombinations(t *testing.T) {
	t.Parallel()

	cards := deck.MustParseCards("AsKsQsJsTs9s8s")
	combos := Combinations(cards, 5)
	assert.Len(t, combos, 21, "C(7,5) = 21")
	for _, combo := range combos {
		assert.Len(t, combo, 5)
	}

	assert.Nil(t, Combinations(cards, 0))
	assert.Nil(t, Combinations(cards, 8))
}

func TestOmahaCombinations(t *testing.T) {
	t.Parallel()

	hole := deck.MustParseCards("AsKdQh2c")
	board := deck.MustParseCards("Jh9c7d5s3h")

	combos := OmahaCombinations(hole, board)
	assert.Len(t, combos, 60, "C(4,2)*C(5,3) = 60")

	holeSet := make(map[deck.Card]bool)
	for _, c := range hole {
		holeSet[c] = true
	}

	for _, combo := range combos {
		require.Len(t, combo, 5)
		fromHole := 0
		for _, c := range combo {
			if holeSet[c] {
				fromHole++
			}
		}
		assert.Equal(t, 2, fromHole, "every combination uses exactly 2 hole cards")
	}
}

func TestEvaluateLow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cards       string
		qualifier   int
		valid       bool
		tiebreakers []int
	}{
		{"nut low", "As2h3d4c5s", 8, true, []int{5, 4, 3, 2, 1}},
		{"eight low", "8s6h4d2cAs", 8, true, []int{8, 6, 4, 2, 1}},
		{"pairs collapse", "As2h2d3c4s5h", 8, true, []int{5, 4, 3, 2, 1}},
		{"nine does not qualify", "9s6h4d2cAs", 8, false, nil},
		{"only four distinct ranks", "As2h2d3c4s", 8, false, nil},
		{"seven or better qualifier", "8s6h4d2cAs", 7, false, nil},
		{"best five of six", "7s6h4d3c2sAs", 8, true, []int{6, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := EvaluateLow(deck.MustParseCards(tt.cards), tt.qualifier)
			require.Equal(t, tt.valid, r.Valid)
			if tt.valid {
				assert.Equal(t, tt.tiebreakers, r.Tiebreakers)
				assert.Len(t, r.BestCards, 5)
			}
		})
	}
}

func TestLowCompositeOrdering(t *testing.T) {
	t.Parallel()

	// 8-6-4-2-A vs 8-6-5-2-A: differ only in the middle card, so a
	// last-card-only encoding would call them equal.
	better := EvaluateLow(deck.MustParseCards("8s6h4d2cAs"), 8)
	worse := EvaluateLow(deck.MustParseCards("8s6h5d2cAs"), 8)
	require.True(t, better.Valid)
	require.True(t, worse.Valid)

	assert.Less(t, better.RankValue, worse.RankValue)
	assert.Positive(t, CompareLow(better, worse))
	assert.Negative(t, CompareLow(worse, better))

	// Wheel is the nut low
	nut := EvaluateLow(deck.MustParseCards("As2h3d4c5s"), 8)
	assert.Positive(t, CompareLow(nut, better))

	// Invalid always loses to valid
	invalid := EvaluateLow(deck.MustParseCards("9s8h7d6c5s"), 8)
	require.False(t, invalid.Valid)
	assert.Positive(t, CompareLow(better, invalid))
	assert.Zero(t, CompareLow(invalid, invalid))
}

func TestGrouping(t *testing.T) {
	t.Parallel()

	cards := deck.MustParseCards("AsAhKs2s")

	byRank := GroupByRank(cards)
	assert.Len(t, byRank[deck.Ace], 2)
	assert.Len(t, byRank[deck.King], 1)

	bySuit := GroupBySuit(cards)
	assert.Len(t, bySuit[deck.Spades], 3)
	assert.Len(t, bySuit[deck.Hearts], 1)
}
