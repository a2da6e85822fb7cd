package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/feltworks/pokertable/internal/game"
)

func setupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadTableConfig(path, table string) (game.Config, error) {
	configs, err := game.LoadConfigs(path)
	if err != nil {
		return game.Config{}, err
	}
	cfg, ok := configs[table]
	if !ok {
		return game.Config{}, fmt.Errorf("table %q not found in %s", table, path)
	}
	return cfg, nil
}

func seatBots(e *game.Engine, n int) error {
	buyIn := e.Config().BuyIn
	for i := 0; i < n; i++ {
		p := game.NewPlayer(fmt.Sprintf("bot-%d", i+1), fmt.Sprintf("Bot %d", i+1), buyIn)
		if !e.AddPlayer(p) {
			return fmt.Errorf("could not seat bot %d", i+1)
		}
	}
	return nil
}

// playHands drives the engine with simple calling-station bots until
// the requested number of hands completes or too few players have
// chips left to continue.
func playHands(e *game.Engine, hands int, rng *rand.Rand) (int, error) {
	played := 0
	for played < hands {
		if !e.StartGame() {
			break
		}
		for e.GameState().IsBettingStreet() {
			id := e.CurrentPlayerID()
			if id == "" {
				break
			}
			p := e.Table().Player(id)
			if p == nil {
				return played, fmt.Errorf("current player %s not seated", id)
			}
			res := e.HandleAction(id, botAction(e, p, rng))
			if !res.Success {
				// Fall back to the safe action rather than spin.
				action := game.NewAction(game.ActionCheck)
				if e.Table().CurrentBet > p.CurrentBet {
					action = game.NewAction(game.ActionFold)
				}
				if res = e.HandleAction(id, action); !res.Success {
					return played, fmt.Errorf("bot %s stuck: %s", id, res.Message)
				}
			}
		}
		played++
	}
	return played, nil
}

// botAction picks an action for an automated player: mostly passive,
// with occasional aggression so pots and side pots actually happen.
func botAction(e *game.Engine, p *game.Player, rng *rand.Rand) game.Action {
	toCall := e.Table().CurrentBet - p.CurrentBet
	roll := rng.Intn(100)

	if toCall <= 0 {
		if roll < 15 && p.Chips > e.Config().BigBlind {
			return game.NewBet(game.ActionBet, e.Config().BigBlind)
		}
		return game.NewAction(game.ActionCheck)
	}

	switch {
	case toCall >= p.Chips:
		if roll < 40 {
			return game.NewAction(game.ActionAllIn)
		}
		return game.NewAction(game.ActionFold)
	case roll < 10:
		minRaise := e.Config().BigBlind
		if doubled := e.Table().CurrentBet * 2; doubled > minRaise {
			minRaise = doubled
		}
		if minRaise-p.CurrentBet <= p.Chips {
			return game.NewBet(game.ActionRaise, minRaise)
		}
		return game.NewAction(game.ActionCall)
	case roll < 25:
		return game.NewAction(game.ActionFold)
	default:
		return game.NewAction(game.ActionCall)
	}
}
