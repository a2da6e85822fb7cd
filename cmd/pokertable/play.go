package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/feltworks/pokertable/internal/deck"
	"github.com/feltworks/pokertable/internal/game"
)

type PlayCmd struct {
	Config  string `kong:"default='tables.hcl',help='HCL table configuration file'"`
	Table   string `kong:"default='main',help='Table name from the configuration'"`
	Players int    `kong:"default='6',help='Number of automated players to seat'"`
	Hands   int    `kong:"default='10',help='Number of hands to play'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := loadTableConfig(c.Config, c.Table)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	logger.Info("starting table",
		"table", c.Table,
		"variant", cfg.Variant,
		"blinds", fmt.Sprintf("%d/%d", cfg.SmallBlind, cfg.BigBlind),
		"players", c.Players,
		"seed", seed)

	e, err := game.NewEngine(cfg,
		game.WithLogger(logger.WithPrefix("engine")),
		game.WithRNG(rng))
	if err != nil {
		return err
	}
	if err := seatBots(e, c.Players); err != nil {
		return err
	}

	e.On(game.EventStateChanged, func(ev game.Event) {
		sc := ev.(game.StateChangedEvent)
		if len(sc.DealtCards) == 0 {
			return
		}
		logger.Info("street dealt", "state", sc.NewState, "cards", formatCards(sc.DealtCards))
	})
	e.On(game.EventHandComplete, func(ev game.Event) {
		hc := ev.(game.HandCompleteEvent)
		for _, w := range hc.Winners {
			fields := []any{"hand", hc.HandID, "player", w.PlayerID, "amount", w.Amount}
			if w.HandRank != "" {
				fields = append(fields, "with", w.HandRank)
			}
			if w.Low {
				fields = append(fields, "low", true)
			}
			logger.Info("pot awarded", fields...)
		}
	})

	played, err := playHands(e, c.Hands, rng)
	if err != nil {
		return err
	}

	logger.Info("session over", "hands", played)
	for _, p := range e.Table().Players() {
		logger.Info("final stack", "player", p.ID, "chips", p.Chips)
	}
	return nil
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
