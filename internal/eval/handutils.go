package eval

import (
	"fmt"
	"sort"

	"github.com/feltworks/pokertable/internal/deck"
)

// GroupByRank groups cards by rank.
func GroupByRank(cards []deck.Card) map[deck.Rank][]deck.Card {
	groups := make(map[deck.Rank][]deck.Card)
	for _, c := range cards {
		groups[c.Rank] = append(groups[c.Rank], c)
	}
	return groups
}

// GroupBySuit groups cards by suit.
func GroupBySuit(cards []deck.Card) map[deck.Suit][]deck.Card {
	groups := make(map[deck.Suit][]deck.Card)
	for _, c := range cards {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	return groups
}

// Combinations generates every k-card subset of the given cards.
func Combinations(cards []deck.Card, k int) [][]deck.Card {
	if k <= 0 || k > len(cards) {
		return nil
	}

	var out [][]deck.Card
	combo := make([]deck.Card, k)

	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			picked := make([]deck.Card, k)
			copy(picked, combo)
			out = append(out, picked)
			return
		}
		for i := start; i <= len(cards)-(k-depth); i++ {
			combo[depth] = cards[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)

	return out
}

// OmahaCombinations generates every five-card hand formed from exactly
// two of the four hole cards and exactly three community cards. This
// pairing is the defining Omaha rule.
func OmahaCombinations(hole, community []deck.Card) [][]deck.Card {
	holePairs := Combinations(hole, 2)
	boardTrips := Combinations(community, 3)

	out := make([][]deck.Card, 0, len(holePairs)*len(boardTrips))
	for _, hp := range holePairs {
		for _, bt := range boardTrips {
			combo := make([]deck.Card, 0, 5)
			combo = append(combo, hp...)
			combo = append(combo, bt...)
			out = append(out, combo)
		}
	}
	return out
}

// sortByValueDesc returns a copy of cards sorted high to low.
func sortByValueDesc(cards []deck.Card) []deck.Card {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Value() > sorted[j].Value()
	})
	return sorted
}

// EvaluateHand evaluates a hand of up to five cards, checking
// categories strongest first. With fewer than five cards only the
// rank-group categories and high card can apply.
func EvaluateHand(cards []deck.Card) Result {
	detectors := []func([]deck.Card) (Result, bool){
		detectRoyalFlush,
		detectStraightFlush,
		detectFourOfAKind,
		detectFullHouse,
		detectFlush,
		detectStraight,
		detectThreeOfAKind,
		detectTwoPair,
		detectOnePair,
	}

	for _, detect := range detectors {
		if r, ok := detect(cards); ok {
			return r
		}
	}

	return detectHighCard(cards)
}

func detectRoyalFlush(cards []deck.Card) (Result, bool) {
	r, ok := detectStraightFlush(cards)
	if !ok || r.Tiebreakers[0] != int(deck.Ace) {
		return Result{}, false
	}
	r.Category = RoyalFlush
	r.RankValue = int(RoyalFlush)
	r.Description = "Royal Flush"
	return r, true
}

func detectStraightFlush(cards []deck.Card) (Result, bool) {
	flush, ok := detectFlush(cards)
	if !ok {
		return Result{}, false
	}
	straight, ok := detectStraight(flush.BestCards)
	if !ok {
		return Result{}, false
	}
	return Result{
		Category:    StraightFlush,
		RankValue:   int(StraightFlush),
		Description: fmt.Sprintf("Straight Flush, %s high", straight.BestCards[0].Rank),
		Tiebreakers: straight.Tiebreakers,
		BestCards:   straight.BestCards,
	}, true
}

func detectFourOfAKind(cards []deck.Card) (Result, bool) {
	quad, rest, ok := takeRankGroup(cards, 4)
	if !ok {
		return Result{}, false
	}

	best := quad
	tiebreakers := []int{quad[0].Value()}
	if len(rest) > 0 {
		kicker := sortByValueDesc(rest)[0]
		best = append(best, kicker)
		tiebreakers = append(tiebreakers, kicker.Value())
	}

	return Result{
		Category:    FourOfAKind,
		RankValue:   int(FourOfAKind),
		Description: fmt.Sprintf("Four of a Kind, %ss", quad[0].Rank),
		Tiebreakers: tiebreakers,
		BestCards:   best,
	}, true
}

func detectFullHouse(cards []deck.Card) (Result, bool) {
	trips, rest, ok := takeRankGroup(cards, 3)
	if !ok {
		return Result{}, false
	}
	pair, _, ok := takeRankGroup(rest, 2)
	if !ok {
		return Result{}, false
	}

	best := append(trips, pair...)
	return Result{
		Category:    FullHouse,
		RankValue:   int(FullHouse),
		Description: fmt.Sprintf("Full House, %ss over %ss", trips[0].Rank, pair[0].Rank),
		Tiebreakers: []int{trips[0].Value(), pair[0].Value()},
		BestCards:   best,
	}, true
}

func detectFlush(cards []deck.Card) (Result, bool) {
	if len(cards) < 5 {
		return Result{}, false
	}
	for _, suited := range GroupBySuit(cards) {
		if len(suited) < 5 {
			continue
		}
		best := sortByValueDesc(suited)[:5]
		tiebreakers := make([]int, 5)
		for i, c := range best {
			tiebreakers[i] = c.Value()
		}
		return Result{
			Category:    Flush,
			RankValue:   int(Flush),
			Description: fmt.Sprintf("Flush, %s high", best[0].Rank),
			Tiebreakers: tiebreakers,
			BestCards:   best,
		}, true
	}
	return Result{}, false
}

func detectStraight(cards []deck.Card) (Result, bool) {
	if len(cards) < 5 {
		return Result{}, false
	}

	// One card per distinct value, highest first.
	byValue := make(map[int]deck.Card)
	for _, c := range cards {
		if _, seen := byValue[c.Value()]; !seen {
			byValue[c.Value()] = c
		}
	}

	values := make([]int, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	// Look for five consecutive distinct values.
	for i := 0; i+4 < len(values); i++ {
		if values[i]-values[i+4] == 4 {
			best := make([]deck.Card, 5)
			for j := 0; j < 5; j++ {
				best[j] = byValue[values[i+j]]
			}
			return Result{
				Category:    Straight,
				RankValue:   int(Straight),
				Description: fmt.Sprintf("Straight, %s high", best[0].Rank),
				Tiebreakers: []int{values[i]},
				BestCards:   best,
			}, true
		}
	}

	// The wheel: the ace plays low below the five. The five leads the
	// returned cards and the ace comes last, since A-2-3-4-5 is the
	// lowest straight.
	if ace, hasAce := byValue[int(deck.Ace)]; hasAce {
		wheel := []deck.Card{ace}
		for v := 5; v >= 2; v-- {
			c, ok := byValue[v]
			if !ok {
				return Result{}, false
			}
			wheel = append(wheel, c)
		}
		best := append(wheel[1:], ace)
		return Result{
			Category:    Straight,
			RankValue:   int(Straight),
			Description: "Straight, Five high",
			Tiebreakers: []int{5},
			BestCards:   best,
		}, true
	}

	return Result{}, false
}

func detectThreeOfAKind(cards []deck.Card) (Result, bool) {
	trips, rest, ok := takeRankGroup(cards, 3)
	if !ok {
		return Result{}, false
	}

	kickers := sortByValueDesc(rest)
	if len(kickers) > 2 {
		kickers = kickers[:2]
	}

	tiebreakers := []int{trips[0].Value()}
	for _, k := range kickers {
		tiebreakers = append(tiebreakers, k.Value())
	}

	return Result{
		Category:    ThreeOfAKind,
		RankValue:   int(ThreeOfAKind),
		Description: fmt.Sprintf("Three of a Kind, %ss", trips[0].Rank),
		Tiebreakers: tiebreakers,
		BestCards:   append(trips, kickers...),
	}, true
}

func detectTwoPair(cards []deck.Card) (Result, bool) {
	high, rest, ok := takeRankGroup(cards, 2)
	if !ok {
		return Result{}, false
	}
	low, rest, ok := takeRankGroup(rest, 2)
	if !ok {
		return Result{}, false
	}

	best := append(high, low...)
	tiebreakers := []int{high[0].Value(), low[0].Value()}
	if kickers := sortByValueDesc(rest); len(kickers) > 0 {
		best = append(best, kickers[0])
		tiebreakers = append(tiebreakers, kickers[0].Value())
	}

	return Result{
		Category:    TwoPair,
		RankValue:   int(TwoPair),
		Description: fmt.Sprintf("Two Pair, %ss and %ss", high[0].Rank, low[0].Rank),
		Tiebreakers: tiebreakers,
		BestCards:   best,
	}, true
}

func detectOnePair(cards []deck.Card) (Result, bool) {
	pair, rest, ok := takeRankGroup(cards, 2)
	if !ok {
		return Result{}, false
	}

	kickers := sortByValueDesc(rest)
	if len(kickers) > 3 {
		kickers = kickers[:3]
	}

	tiebreakers := []int{pair[0].Value()}
	for _, k := range kickers {
		tiebreakers = append(tiebreakers, k.Value())
	}

	return Result{
		Category:    OnePair,
		RankValue:   int(OnePair),
		Description: fmt.Sprintf("One Pair, %ss", pair[0].Rank),
		Tiebreakers: tiebreakers,
		BestCards:   append(pair, kickers...),
	}, true
}

func detectHighCard(cards []deck.Card) Result {
	best := sortByValueDesc(cards)
	if len(best) > 5 {
		best = best[:5]
	}

	tiebreakers := make([]int, len(best))
	for i, c := range best {
		tiebreakers[i] = c.Value()
	}

	desc := "High Card"
	if len(best) > 0 {
		desc = fmt.Sprintf("High Card, %s", best[0].Rank)
	}

	return Result{
		Category:    HighCard,
		RankValue:   int(HighCard),
		Description: desc,
		Tiebreakers: tiebreakers,
		BestCards:   best,
	}
}

// takeRankGroup extracts the highest rank group of at least size n.
// Exactly n cards of that rank are returned; every other rank is
// returned as rest.
func takeRankGroup(cards []deck.Card, n int) (group, rest []deck.Card, ok bool) {
	groups := GroupByRank(cards)

	bestValue := 0
	var bestRank deck.Rank
	for rank, g := range groups {
		if len(g) >= n && int(rank) > bestValue {
			bestValue = int(rank)
			bestRank = rank
		}
	}
	if bestValue == 0 {
		return nil, nil, false
	}

	group = groups[bestRank][:n]
	for _, c := range cards {
		if c.Rank == bestRank {
			continue
		}
		rest = append(rest, c)
	}
	// Extra cards of the grouped rank stay out of play for kickers.
	return group, rest, true
}

// EvaluateLow evaluates the best qualifying low hand from the given
// cards under "qualifier or better" rules (default eight). The ace
// always counts as one, pairs cannot be used, and five distinct
// qualifying ranks are required.
func EvaluateLow(cards []deck.Card, qualifier int) LowResult {
	// One card per distinct ace-low value, qualifying only.
	byValue := make(map[int]deck.Card)
	for _, c := range cards {
		v := c.LowValue()
		if v > qualifier {
			continue
		}
		if _, seen := byValue[v]; !seen {
			byValue[v] = c
		}
	}

	if len(byValue) < 5 {
		return LowResult{}
	}

	values := make([]int, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Ints(values)
	values = values[:5]

	// Highest card first, the convention for reading a low hand
	// (e.g. 8-6-4-2-A).
	best := make([]deck.Card, 5)
	tiebreakers := make([]int, 5)
	rankValue := 0
	for i := 0; i < 5; i++ {
		v := values[4-i]
		best[i] = byValue[v]
		tiebreakers[i] = v
		// Composite encoding: each card contributes a base-16 digit so
		// two different low hands never compare as equal.
		rankValue = rankValue<<4 | v
	}

	return LowResult{
		Valid:       true,
		RankValue:   rankValue,
		Tiebreakers: tiebreakers,
		BestCards:   best,
	}
}
