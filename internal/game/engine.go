package game

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/feltworks/pokertable/internal/deck"
	"github.com/feltworks/pokertable/internal/eval"
	"github.com/feltworks/pokertable/internal/fsm"
)

// PlayerManager is an optional collaborator that tracks long-lived
// player activity and statistics outside the engine. The engine calls
// it opportunistically when attached and works without one.
type PlayerManager interface {
	UpdatePlayerActivity(playerID string)
	UpdatePlayerStats(playerID string, won bool, amount int)
	GetPlayerSession(playerID string) (any, bool)
}

// Engine drives a single table through hands of play: it validates
// player actions against game state, advances turns and streets,
// resolves showdowns and pays out pots.
//
// All public methods are safe for concurrent use, but the engine is
// logically single-threaded: each call runs to completion under one
// lock, so two actions on the same table never interleave. Multiple
// tables need independent engines.
type Engine struct {
	mu sync.Mutex

	cfg       Config
	table     *Table
	dealer    *Dealer
	evaluator eval.Evaluator
	pots      *PotManager
	states    *fsm.StateMachine[fsm.GameState]
	bus       *eventBus
	logger    *log.Logger
	clock     quartz.Clock
	manager   PlayerManager
	rng       *rand.Rand

	handID         string
	button         int
	bbSeat         int
	currentSeat    int
	acted          map[int]bool
	pendingRemoval map[string]bool
	turnTimer      *quartz.Timer
	turnSeq        int
	startingChips  int
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithClock sets the clock used for turn timers. Tests inject a mock.
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithRNG sets the RNG used for shuffling. Required for deterministic
// tests unless a dealer is injected.
func WithRNG(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithDealer injects a dealer, typically wrapping a stacked deck.
func WithDealer(d *Dealer) Option {
	return func(e *Engine) { e.dealer = d }
}

// WithEvaluator injects a hand evaluator, overriding the one implied
// by the configured variant.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(e *Engine) { e.evaluator = ev }
}

// WithPotManager injects a pot manager.
func WithPotManager(pm *PotManager) Option {
	return func(e *Engine) { e.pots = pm }
}

// WithStateMachine injects a state machine.
func WithStateMachine(sm *fsm.StateMachine[fsm.GameState]) Option {
	return func(e *Engine) { e.states = sm }
}

// WithPlayerManager attaches the optional player manager collaborator.
func WithPlayerManager(pm PlayerManager) Option {
	return func(e *Engine) { e.manager = pm }
}

// NewEngine creates an engine for one table with the given rules.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	cfg = cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:            cfg,
		table:          NewTable(cfg.MaxPlayers),
		button:         -1,
		currentSeat:    -1,
		acted:          make(map[int]bool),
		pendingRemoval: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.clock == nil {
		e.clock = quartz.NewReal()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.dealer == nil {
		e.dealer = NewDealer(e.rng)
	}
	if e.evaluator == nil {
		ev, err := eval.New(cfg.Variant)
		if err != nil {
			return nil, err
		}
		e.evaluator = ev
	}
	if e.pots == nil {
		e.pots = NewPotManager()
	}
	if e.states == nil {
		e.states = fsm.NewGameStateMachine()
	}
	e.bus = newEventBus(e.logger)

	return e, nil
}

// On subscribes a handler to an event type.
func (e *Engine) On(et EventType, h Handler) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bus.subscribe(et, h)
}

// Off removes a previously registered handler.
func (e *Engine) Off(et EventType, id Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bus.unsubscribe(et, id)
}

// GameState returns the current state.
func (e *Engine) GameState() fsm.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.states.Current()
}

// Table returns the engine's table.
func (e *Engine) Table() *Table {
	return e.table
}

// Config returns the table rules.
func (e *Engine) Config() Config {
	return e.cfg
}

// Pots returns the engine's pot manager.
func (e *Engine) Pots() *PotManager {
	return e.pots
}

// IsPlayersTurn reports whether the given player is the one to act.
func (e *Engine) IsPlayersTurn(playerID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isPlayersTurnLocked(playerID)
}

// CurrentPlayerID returns the player whose turn it is, or "" when no
// one is due to act.
func (e *Engine) CurrentPlayerID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.currentSeat < 0 || !e.states.Current().IsBettingStreet() {
		return ""
	}
	players := e.table.Players()
	if e.currentSeat >= len(players) {
		return ""
	}
	return players[e.currentSeat].ID
}

func (e *Engine) isPlayersTurnLocked(playerID string) bool {
	if e.currentSeat < 0 {
		return false
	}
	players := e.table.Players()
	if e.currentSeat >= len(players) {
		return false
	}
	return players[e.currentSeat].ID == playerID
}

// AddPlayer seats a player. New players sit out until the next hand.
func (e *Engine) AddPlayer(p *Player) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.table.SeatPlayer(p); err != nil {
		e.logger.Warn("cannot seat player", "player", p.ID, "error", err)
		return false
	}
	p.Status = StatusSittingOut
	e.logger.Info("player seated", "player", p.ID, "seat", p.Seat, "chips", p.Chips)
	return true
}

// RemovePlayer removes a player from the table. A player still in the
// hand is folded first so the hand can continue.
func (e *Engine) RemovePlayer(playerID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.table.Player(playerID)
	if p == nil {
		return false
	}

	if e.states.Current().IsBettingStreet() && p.InHand() {
		// Fold them so the hand can continue; the seat itself is
		// removed once the hand is over, keeping seat numbers stable.
		e.pendingRemoval[playerID] = true
		wasTheirTurn := e.isPlayersTurnLocked(playerID)
		e.foldPlayer(p)
		if e.isRoundComplete() {
			e.advanceToNextState()
		} else if wasTheirTurn {
			e.moveToNextPlayer()
		}
		return true
	}

	return e.table.RemovePlayer(playerID)
}

// processPendingRemovals drops seats whose players left mid-hand.
func (e *Engine) processPendingRemovals() {
	for id := range e.pendingRemoval {
		e.table.RemovePlayer(id)
	}
	e.pendingRemoval = make(map[string]bool)
}

// StartGame begins a new hand. It fails when fewer than MinPlayers
// are seated with chips or the table is not in the waiting state.
func (e *Engine) StartGame() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.states.Current() != fsm.Waiting {
		e.logger.Warn("cannot start game", "state", e.states.Current())
		return false
	}

	funded := 0
	for _, p := range e.table.Players() {
		if p.Chips > 0 {
			funded++
		}
	}
	if funded < e.cfg.MinPlayers {
		e.logger.Warn("not enough players to start", "funded", funded, "min", e.cfg.MinPlayers)
		return false
	}

	if err := e.states.Transition(fsm.Starting); err != nil {
		return false
	}

	e.handID = uuid.NewString()
	e.startingChips = e.table.TotalChips() + e.pots.Total()
	e.pots.Clear()
	e.table.ClearCommunityCards()
	e.table.CurrentBet = 0
	e.acted = make(map[int]bool)
	for _, p := range e.table.Players() {
		p.ResetForHand()
	}
	e.dealer.Reset()

	players := e.table.Players()
	n := len(players)
	e.button = ((e.button+1)%n + n) % n

	e.postBlinds()

	holeCards := 2
	if e.evaluator.Variant() == eval.Omaha || e.evaluator.Variant() == eval.OmahaHiLo {
		holeCards = 4
	}
	if err := e.dealer.DealHoleCards(e.table.PlayersInHand(), holeCards); err != nil {
		e.logger.Error("deal failed", "error", err)
		e.bus.publish(GameErrorEvent{eventBase: newEventBase(), Message: err.Error()})
		return false
	}

	e.transitionTo(fsm.Preflop, nil)

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	e.logger.Info("hand started",
		"hand", e.handID,
		"players", len(players),
		"blinds", fmt.Sprintf("%d/%d", e.cfg.SmallBlind, e.cfg.BigBlind))
	e.bus.publish(GameStartedEvent{
		eventBase:  newEventBase(),
		HandID:     e.handID,
		Players:    names,
		SmallBlind: e.cfg.SmallBlind,
		BigBlind:   e.cfg.BigBlind,
	})

	e.currentSeat = e.firstToActPreflop()
	if e.currentSeat < 0 {
		// The blinds put everyone all-in; run the board out.
		e.advanceToNextState()
		return true
	}
	e.beginTurn()
	return true
}

// HandleAction validates and applies a player action. Foreseeable
// failures come back in the result; the engine state is untouched on
// failure.
func (e *Engine) HandleAction(playerID string, action Action) ActionResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.handleActionLocked(playerID, action)
}

func (e *Engine) handleActionLocked(playerID string, action Action) ActionResult {
	p := e.table.Player(playerID)
	if p == nil {
		return failure("Player not found")
	}
	if !e.states.Current().IsBettingStreet() {
		return failure(fmt.Sprintf("No betting in state %s", e.states.Current()))
	}
	if !e.isPlayersTurnLocked(playerID) {
		return failure("Not your turn")
	}

	e.cancelTurnTimer()

	amount, result := e.applyAction(p, action)
	if !result.Success {
		// The player still has to act; rearm their timer.
		e.armTurnTimer()
		return result
	}

	e.acted[p.Seat] = true
	if e.manager != nil {
		e.manager.UpdatePlayerActivity(playerID)
	}

	e.logger.Info("action",
		"hand", e.handID,
		"player", p.Name,
		"action", action.Type,
		"amount", amount,
		"pot", e.pots.Total())
	e.bus.publish(PlayerActionEvent{
		eventBase: newEventBase(),
		PlayerID:  playerID,
		Action:    action,
		Amount:    amount,
		State:     e.states.Current(),
		PotAfter:  e.pots.Total(),
	})

	e.advanceGame()

	result.NextState = e.states.Current()
	return result
}

// applyAction applies the action semantics and returns the chips moved.
func (e *Engine) applyAction(p *Player, action Action) (int, ActionResult) {
	switch action.Type {
	case ActionFold:
		e.foldPlayer(p)
		return 0, ActionResult{Success: true}

	case ActionCheck:
		if e.table.CurrentBet > p.CurrentBet {
			return 0, failure("Cannot check, must call or raise")
		}
		return 0, ActionResult{Success: true}

	case ActionCall:
		toCall := e.table.CurrentBet - p.CurrentBet
		if toCall <= 0 {
			return 0, failure("Nothing to call")
		}
		placed := p.PlaceBet(toCall)
		e.pots.AddBet(p.ID, placed)
		return placed, ActionResult{Success: true}

	case ActionBet, ActionRaise:
		minTotal := e.cfg.BigBlind
		if doubled := e.table.CurrentBet * 2; doubled > minTotal {
			minTotal = doubled
		}
		if action.Amount < minTotal {
			return 0, failure(fmt.Sprintf("Minimum bet/raise is %d", minTotal))
		}
		needed := action.Amount - p.CurrentBet
		if needed <= 0 {
			return 0, failure(fmt.Sprintf("Already committed %d", p.CurrentBet))
		}
		if needed > p.Chips {
			return 0, failure(fmt.Sprintf("Insufficient chips: need %d, have %d", needed, p.Chips))
		}
		placed := p.PlaceBet(needed)
		e.pots.AddBet(p.ID, placed)
		e.table.CurrentBet = p.CurrentBet
		e.reopenBetting(p.Seat)
		return placed, ActionResult{Success: true}

	case ActionAllIn:
		if p.Chips <= 0 {
			return 0, failure("No chips to bet")
		}
		placed := p.PlaceBet(p.Chips)
		e.pots.AddBet(p.ID, placed)
		p.Status = StatusAllIn
		if p.CurrentBet > e.table.CurrentBet {
			e.table.CurrentBet = p.CurrentBet
			e.reopenBetting(p.Seat)
		}
		return placed, ActionResult{Success: true}

	default:
		return 0, failure(fmt.Sprintf("Unknown action %v", action.Type))
	}
}

// foldPlayer marks a player folded and strikes them from every pot.
func (e *Engine) foldPlayer(p *Player) {
	p.Status = StatusFolded
	e.pots.RemoveEligiblePlayer(p.ID)
}

// reopenBetting resets acted flags after a raise so everyone else must
// respond; the raiser keeps their flag.
func (e *Engine) reopenBetting(raiserSeat int) {
	e.acted = map[int]bool{raiserSeat: true}
}

// advanceGame checks round completion after every successful action
// and either moves to the next eligible player or advances the street.
func (e *Engine) advanceGame() {
	if e.isRoundComplete() {
		e.bus.publish(RoundCompleteEvent{
			eventBase: newEventBase(),
			State:     e.states.Current(),
			Pot:       e.pots.Total(),
		})
		e.advanceToNextState()
		return
	}
	e.moveToNextPlayer()
}

// isRoundComplete implements the round completion rule: the round is
// over when at most one active player remains, or when every active
// player has acted and matched the table bet. A player who is all-in
// below the table bet cannot act further and counts as satisfied.
func (e *Engine) isRoundComplete() bool {
	active := e.table.ActivePlayers()
	if len(active) <= 1 {
		if len(active) == 1 {
			p := active[0]
			// The last active player still owes action if others are
			// all-in above their bet.
			if p.CurrentBet < e.table.CurrentBet || !e.acted[p.Seat] {
				return e.onlyPlayerLeftInHand()
			}
		}
		return true
	}

	for _, p := range active {
		if p.CurrentBet != e.table.CurrentBet {
			return false
		}
		if !e.acted[p.Seat] {
			return false
		}
	}
	return true
}

// onlyPlayerLeftInHand reports whether a single player holds the pot
// uncontested.
func (e *Engine) onlyPlayerLeftInHand() bool {
	return len(e.table.PlayersInHand()) <= 1
}

// moveToNextPlayer finds the next active player after the current one
// and begins their turn.
func (e *Engine) moveToNextPlayer() {
	next := e.nextActiveSeat(e.currentSeat + 1)
	if next < 0 {
		e.advanceToNextState()
		return
	}
	e.currentSeat = next
	e.beginTurn()
}

func (e *Engine) nextActiveSeat(from int) int {
	players := e.table.Players()
	n := len(players)
	if n == 0 {
		return -1
	}
	for i := 0; i < n; i++ {
		seat := ((from + i) % n + n) % n
		if players[seat].IsActive() {
			return seat
		}
	}
	return -1
}

// beginTurn emits the turn event and arms the action timer.
func (e *Engine) beginTurn() {
	p := e.table.Players()[e.currentSeat]
	e.bus.publish(PlayerTurnEvent{
		eventBase:      newEventBase(),
		PlayerID:       p.ID,
		TimeoutSeconds: e.cfg.TurnTimeoutSec,
	})
	e.armTurnTimer()
}

// advanceToNextState collects the street's bets and either deals the
// next street, runs the board out for an all-in showdown, or resolves
// the hand.
func (e *Engine) advanceToNextState() {
	e.cancelTurnTimer()
	e.currentSeat = -1

	e.pots.CollectBets()
	for _, p := range e.table.Players() {
		p.CurrentBet = 0
	}
	e.table.CurrentBet = 0
	e.acted = make(map[int]bool)

	state := e.states.Current()

	// With one player left there is nothing more to deal or evaluate.
	if e.onlyPlayerLeftInHand() {
		e.transitionTo(fsm.Showdown, nil)
		e.resolveHand()
		return
	}

	// Betting can no longer occur: run the remaining board out and go
	// straight to showdown.
	if len(e.table.ActivePlayers()) <= 1 && state.IsBettingStreet() {
		dealt := e.runOutBoard(state)
		e.transitionTo(fsm.Showdown, dealt)
		e.resolveHand()
		return
	}

	switch state {
	case fsm.Preflop:
		cards, err := e.dealer.DealFlop(e.table)
		if err != nil {
			e.failHand(err)
			return
		}
		e.transitionTo(fsm.Flop, cards)
	case fsm.Flop:
		cards, err := e.dealer.DealTurn(e.table)
		if err != nil {
			e.failHand(err)
			return
		}
		e.transitionTo(fsm.Turn, cards)
	case fsm.Turn:
		cards, err := e.dealer.DealRiver(e.table)
		if err != nil {
			e.failHand(err)
			return
		}
		e.transitionTo(fsm.River, cards)
	case fsm.River:
		e.transitionTo(fsm.Showdown, nil)
		e.resolveHand()
		return
	default:
		return
	}

	e.currentSeat = e.nextActiveSeat(e.button + 1)
	if e.currentSeat < 0 {
		e.advanceToNextState()
		return
	}
	e.beginTurn()
}

// runOutBoard deals every remaining street for an all-in showdown and
// returns the newly dealt cards.
func (e *Engine) runOutBoard(from fsm.GameState) []deck.Card {
	var dealt []deck.Card
	deal := func(cards []deck.Card, err error) bool {
		if err != nil {
			e.failHand(err)
			return false
		}
		dealt = append(dealt, cards...)
		return true
	}

	switch from {
	case fsm.Preflop:
		if !deal(e.dealer.DealFlop(e.table)) {
			return dealt
		}
		fallthrough
	case fsm.Flop:
		if !deal(e.dealer.DealTurn(e.table)) {
			return dealt
		}
		fallthrough
	case fsm.Turn:
		if !deal(e.dealer.DealRiver(e.table)) {
			return dealt
		}
	}
	return dealt
}

// transitionTo moves the state machine and emits the change with any
// newly dealt cards.
func (e *Engine) transitionTo(target fsm.GameState, dealt []deck.Card) {
	old := e.states.Current()
	if err := e.states.Transition(target); err != nil {
		e.logger.Error("illegal state transition", "from", old, "to", target, "error", err)
		e.bus.publish(GameErrorEvent{eventBase: newEventBase(), Message: err.Error()})
		return
	}
	e.bus.publish(StateChangedEvent{
		eventBase:  newEventBase(),
		OldState:   old,
		NewState:   target,
		DealtCards: dealt,
	})
}

func (e *Engine) failHand(err error) {
	e.logger.Error("hand aborted", "hand", e.handID, "error", err)
	e.bus.publish(GameErrorEvent{eventBase: newEventBase(), Message: err.Error()})
}

// postBlinds posts the small and big blind, skipping seats that are
// sitting out. Heads-up, the button posts the small blind.
func (e *Engine) postBlinds() {
	players := e.table.Players()

	var sbSeat int
	if len(e.table.ActivePlayers()) == 2 {
		sbSeat = e.nextActiveSeat(e.button)
	} else {
		sbSeat = e.nextActiveSeat(e.button + 1)
	}
	bbSeat := e.nextActiveSeat(sbSeat + 1)

	sb := players[sbSeat]
	bb := players[bbSeat]
	e.pots.AddBet(sb.ID, sb.PlaceBet(e.cfg.SmallBlind))
	e.pots.AddBet(bb.ID, bb.PlaceBet(e.cfg.BigBlind))
	e.table.CurrentBet = e.cfg.BigBlind
	e.bbSeat = bbSeat
}

// firstToActPreflop returns the seat that opens the preflop betting:
// the first player still able to act after the big blind. Heads-up
// that wraps around to the button.
func (e *Engine) firstToActPreflop() int {
	return e.nextActiveSeat(e.bbSeat + 1)
}

// resolveHand evaluates the remaining hands, pays out every pot, and
// completes the hand.
func (e *Engine) resolveHand() {
	inHand := e.table.PlayersInHand()
	totalPot := e.pots.Total()
	var winners []Winner

	if len(inHand) == 1 {
		// Uncontested: award everything without evaluation.
		p := inHand[0]
		p.Chips += totalPot
		winners = append(winners, Winner{PlayerID: p.ID, Amount: totalPot})
	} else {
		winners = e.payOutPots()
	}

	e.applyStats(winners)

	e.logger.Info("hand complete",
		"hand", e.handID,
		"pot", totalPot,
		"winners", len(winners))
	e.bus.publish(HandCompleteEvent{
		eventBase: newEventBase(),
		HandID:    e.handID,
		Winners:   winners,
		Pot:       totalPot,
		Board:     e.table.CommunityCards,
	})

	e.pots.Clear()
	e.verifyChipConservation()

	e.transitionTo(fsm.Finished, nil)
	e.transitionTo(fsm.Waiting, nil)
	e.processPendingRemovals()
}

// payOutPots awards each pot (main first, then side pots) to the best
// eligible hand or hands. Exact ties split the pot; in hi-lo play a
// qualifying low hand takes half of each pot, with the odd chip going
// to the high side.
func (e *Engine) payOutPots() []Winner {
	highs := make(map[string]eval.Result)
	lows := make(map[string]eval.LowResult)
	hiLo := e.evaluator.Variant() == eval.OmahaHiLo

	for _, p := range e.table.PlayersInHand() {
		r, err := e.evaluator.EvaluateHigh(p.Hand.Cards(), e.table.CommunityCards)
		if err != nil {
			e.failHand(fmt.Errorf("evaluating %s: %w", p.ID, err))
			continue
		}
		highs[p.ID] = r
		if hiLo {
			lr, err := e.evaluator.EvaluateLow(p.Hand.Cards(), e.table.CommunityCards, e.cfg.LowQualifier)
			if err == nil && lr.Valid {
				lows[p.ID] = lr
			}
		}
	}

	winnings := make(map[string]int)
	wonHigh := make(map[string]bool)
	wonLow := make(map[string]bool)

	for _, pot := range e.pots.Pots() {
		if pot.Amount == 0 {
			continue
		}
		eligible := pot.EligiblePlayers()
		if len(eligible) == 0 {
			continue
		}

		bestHigh := bestHighAmong(eligible, highs)
		bestLow := bestLowAmong(eligible, lows)

		highShare := pot.Amount
		lowShare := 0
		if len(bestLow) > 0 {
			lowShare = pot.Amount / 2
			highShare = pot.Amount - lowShare
		}

		e.splitShare(highShare, bestHigh, winnings)
		for _, id := range bestHigh {
			wonHigh[id] = true
		}
		if lowShare > 0 {
			e.splitShare(lowShare, bestLow, winnings)
			for _, id := range bestLow {
				wonLow[id] = true
			}
		}
	}

	var winners []Winner
	ids := make([]string, 0, len(winnings))
	for id := range winnings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := e.table.Player(id)
		if p == nil {
			continue
		}
		amount := winnings[id]
		p.Chips += amount

		w := Winner{PlayerID: id, Amount: amount}
		if wonHigh[id] {
			if r, ok := highs[id]; ok {
				w.HandRank = r.Description
				w.RankValue = r.RankValue
				w.BestCards = r.BestCards
			}
		} else if wonLow[id] {
			if lr, ok := lows[id]; ok {
				w.Low = true
				w.HandRank = "Low"
				w.RankValue = lr.RankValue
				w.BestCards = lr.BestCards
			}
		}
		winners = append(winners, w)
	}
	return winners
}

// splitShare divides a pot share evenly, giving any odd chips to the
// winners closest to the left of the button.
func (e *Engine) splitShare(amount int, ids []string, winnings map[string]int) {
	if len(ids) == 0 || amount <= 0 {
		return
	}

	ordered := make([]string, len(ids))
	copy(ordered, ids)
	n := len(e.table.Players())
	sort.Slice(ordered, func(i, j int) bool {
		return e.seatDistance(ordered[i], n) < e.seatDistance(ordered[j], n)
	})

	each := amount / len(ordered)
	remainder := amount % len(ordered)
	for i, id := range ordered {
		winnings[id] += each
		if i < remainder {
			winnings[id]++
		}
	}
}

func (e *Engine) seatDistance(playerID string, n int) int {
	p := e.table.Player(playerID)
	if p == nil || n == 0 {
		return 0
	}
	return ((p.Seat - e.button - 1) % n + n) % n
}

func bestHighAmong(eligible []string, highs map[string]eval.Result) []string {
	var best []string
	var bestResult eval.Result
	for _, id := range eligible {
		r, ok := highs[id]
		if !ok {
			continue
		}
		if len(best) == 0 {
			best = []string{id}
			bestResult = r
			continue
		}
		switch cmp := eval.Compare(r, bestResult); {
		case cmp > 0:
			best = []string{id}
			bestResult = r
		case cmp == 0:
			best = append(best, id)
		}
	}
	return best
}

func bestLowAmong(eligible []string, lows map[string]eval.LowResult) []string {
	var best []string
	var bestResult eval.LowResult
	for _, id := range eligible {
		r, ok := lows[id]
		if !ok {
			continue
		}
		if len(best) == 0 {
			best = []string{id}
			bestResult = r
			continue
		}
		switch cmp := eval.CompareLow(r, bestResult); {
		case cmp > 0:
			best = []string{id}
			bestResult = r
		case cmp == 0:
			best = append(best, id)
		}
	}
	return best
}

func (e *Engine) applyStats(winners []Winner) {
	if e.manager == nil {
		return
	}
	won := make(map[string]int)
	for _, w := range winners {
		won[w.PlayerID] += w.Amount
	}
	for _, p := range e.table.Players() {
		if p.Status == StatusSittingOut && p.TotalBet == 0 {
			continue
		}
		amount, ok := won[p.ID]
		e.manager.UpdatePlayerStats(p.ID, ok, amount)
	}
}

// verifyChipConservation checks that every chip moved out of a stack
// this hand came back as winnings.
func (e *Engine) verifyChipConservation() {
	now := e.table.TotalChips() + e.pots.Total()
	if now != e.startingChips {
		e.logger.Error("chip conservation violated",
			"hand", e.handID,
			"expected", e.startingChips,
			"actual", now)
		e.bus.publish(GameErrorEvent{
			eventBase: newEventBase(),
			Message:   fmt.Sprintf("chip conservation violated: expected %d, have %d", e.startingChips, now),
		})
	}
}

// armTurnTimer schedules the auto-action for the current player. The
// sequence number makes cancellation idempotent and race-free: a
// stale timer that fires after the player acted is ignored.
func (e *Engine) armTurnTimer() {
	if e.cfg.TurnTimeoutSec <= 0 || e.currentSeat < 0 {
		return
	}

	e.turnSeq++
	seq := e.turnSeq
	playerID := e.table.Players()[e.currentSeat].ID
	d := time.Duration(e.cfg.TurnTimeoutSec) * time.Second
	e.turnTimer = e.clock.AfterFunc(d, func() {
		e.autoAct(seq, playerID)
	})
}

func (e *Engine) cancelTurnTimer() {
	e.turnSeq++
	if e.turnTimer != nil {
		e.turnTimer.Stop()
		e.turnTimer = nil
	}
}

// autoAct synthesizes a fold or check for a player whose turn timed
// out, through the normal action path.
func (e *Engine) autoAct(seq int, playerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if seq != e.turnSeq || !e.isPlayersTurnLocked(playerID) {
		return // A real action won the race.
	}

	p := e.table.Player(playerID)
	if p == nil {
		return
	}

	action := NewAction(ActionCheck)
	if e.table.CurrentBet > p.CurrentBet {
		action = NewAction(ActionFold)
	}

	e.logger.Info("turn timeout, acting for player",
		"hand", e.handID,
		"player", p.Name,
		"action", action.Type)
	e.handleActionLocked(playerID, action)
}
