package game

import "sort"

// Pot is a single pot pool: its amount, a ledger of who contributed
// what, and the set of players still able to win it. Folded players
// are struck from the eligible set but their chips stay in the pot.
type Pot struct {
	Amount        int
	Contributions map[string]int
	Eligible      map[string]bool
}

func newPot() *Pot {
	return &Pot{
		Contributions: make(map[string]int),
		Eligible:      make(map[string]bool),
	}
}

// EligiblePlayers returns the eligible player ids in stable order.
func (p *Pot) EligiblePlayers() []string {
	ids := make([]string, 0, len(p.Eligible))
	for id := range p.Eligible {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PotManager tracks one main pot, any number of side pots, a ledger of
// each player's chips committed over the whole hand, and the bets of
// the current street not yet folded into a pot.
//
// Invariant: Total() always equals the chips moved out of player
// stacks this hand that have not yet been returned as winnings.
type PotManager struct {
	main      *Pot
	sidePots  []*Pot
	pending   map[string]int
	committed map[string]int
	folded    map[string]bool
}

// NewPotManager creates an empty pot manager for a new hand.
func NewPotManager() *PotManager {
	return &PotManager{
		main:      newPot(),
		pending:   make(map[string]int),
		committed: make(map[string]int),
		folded:    make(map[string]bool),
	}
}

// AddBet accumulates a bet into the pending ledger for the current
// street. Nothing reaches a pot until CollectBets.
func (pm *PotManager) AddBet(playerID string, amount int) {
	if amount <= 0 {
		return
	}
	pm.pending[playerID] += amount
}

// CollectBets folds the pending street bets into the main pot and any
// side pots. The pots are rebuilt from each player's whole-hand
// committed total: distinct totals are walked lowest first, the lowest
// level funds the main pot and each higher level (a player who put in
// more than somebody who was all-in for less, on any street) funds a
// side pot indexed by its position in the sorted order. A player is
// eligible for a pot only if their committed total reaches its level,
// so a short all-in from an earlier street can never win later-street
// chips they did not match.
func (pm *PotManager) CollectBets() {
	if len(pm.pending) == 0 {
		return
	}
	for id, amount := range pm.pending {
		pm.committed[id] += amount
	}
	pm.pending = make(map[string]int)

	// Distinct contribution levels, ascending.
	levelSet := make(map[int]bool)
	for _, amount := range pm.committed {
		levelSet[amount] = true
	}
	levels := make([]int, 0, len(levelSet))
	for amount := range levelSet {
		levels = append(levels, amount)
	}
	sort.Ints(levels)

	pm.main = newPot()
	pm.sidePots = nil

	prev := 0
	for i, level := range levels {
		pot := pm.potForLevel(i)
		for id, total := range pm.committed {
			capped := total
			if capped > level {
				capped = level
			}
			contribution := capped - prev
			if contribution <= 0 {
				continue
			}
			pot.Amount += contribution
			pot.Contributions[id] += contribution
			if !pm.folded[id] {
				pot.Eligible[id] = true
			}
		}
		prev = level
	}
}

// potForLevel returns the pot that collects the i-th contribution
// level: the main pot for the lowest level, then side pots in order,
// created on demand.
func (pm *PotManager) potForLevel(i int) *Pot {
	if i == 0 {
		return pm.main
	}
	for len(pm.sidePots) < i {
		pm.sidePots = append(pm.sidePots, newPot())
	}
	return pm.sidePots[i-1]
}

// RemoveEligiblePlayer strikes a player from every pot's eligible set.
// Called on fold; the player's contributed chips stay in the pots.
func (pm *PotManager) RemoveEligiblePlayer(playerID string) {
	pm.folded[playerID] = true
	delete(pm.main.Eligible, playerID)
	for _, pot := range pm.sidePots {
		delete(pot.Eligible, playerID)
	}
}

// MainPot returns the main pot.
func (pm *PotManager) MainPot() *Pot {
	return pm.main
}

// SidePots returns the side pots in creation order.
func (pm *PotManager) SidePots() []*Pot {
	return pm.sidePots
}

// Pots returns the main pot followed by the side pots.
func (pm *PotManager) Pots() []*Pot {
	pots := make([]*Pot, 0, 1+len(pm.sidePots))
	pots = append(pots, pm.main)
	pots = append(pots, pm.sidePots...)
	return pots
}

// PendingBet returns the uncollected bet for a player this street.
func (pm *PotManager) PendingBet(playerID string) int {
	return pm.pending[playerID]
}

// Total returns every chip in play: collected pots plus pending bets.
func (pm *PotManager) Total() int {
	total := pm.main.Amount
	for _, pot := range pm.sidePots {
		total += pot.Amount
	}
	for _, amount := range pm.pending {
		total += amount
	}
	return total
}

// Clear resets all pots and ledgers for the next hand.
func (pm *PotManager) Clear() {
	pm.main = newPot()
	pm.sidePots = nil
	pm.pending = make(map[string]int)
	pm.committed = make(map[string]int)
	pm.folded = make(map[string]bool)
}
