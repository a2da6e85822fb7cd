// Package eval implements combinatorial poker hand evaluation: category
// detection, variant-specific best-hand search, and hand comparison.
package eval

import "github.com/feltworks/pokertable/internal/deck"

// Category is a poker hand category, ordered weakest to strongest.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Result describes an evaluated high hand. BestCards holds the exact
// cards that realize the category (five once the board allows it,
// fewer pre-flop). Tiebreakers break ties within the same category,
// compared element by element.
type Result struct {
	Category    Category
	RankValue   int
	Description string
	Tiebreakers []int
	BestCards   []deck.Card
}

// LowResult describes an evaluated low hand. Valid is true only when
// five distinct-rank cards all qualify under the low threshold.
// RankValue is a composite of all five ace-low card values; lower is
// better.
type LowResult struct {
	Valid       bool
	RankValue   int
	Tiebreakers []int
	BestCards   []deck.Card
}

// Compare orders two high-hand results. It returns a positive number
// if a is stronger, negative if b is stronger, and zero on an exact
// tie. RankValue is the primary key; Tiebreakers break ties within the
// same category.
func Compare(a, b Result) int {
	if a.RankValue != b.RankValue {
		return a.RankValue - b.RankValue
	}

	n := len(a.Tiebreakers)
	if len(b.Tiebreakers) < n {
		n = len(b.Tiebreakers)
	}
	for i := 0; i < n; i++ {
		if a.Tiebreakers[i] != b.Tiebreakers[i] {
			return a.Tiebreakers[i] - b.Tiebreakers[i]
		}
	}
	return len(a.Tiebreakers) - len(b.Tiebreakers)
}

// CompareLow orders two low-hand results. Invalid results always lose
// to valid ones. Returns a positive number if a is the better low.
func CompareLow(a, b LowResult) int {
	switch {
	case a.Valid && !b.Valid:
		return 1
	case !a.Valid && b.Valid:
		return -1
	case !a.Valid && !b.Valid:
		return 0
	}
	// Lower composite value is the better low hand.
	return b.RankValue - a.RankValue
}
