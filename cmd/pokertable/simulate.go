package main

import (
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/feltworks/pokertable/internal/game"
)

type SimulateCmd struct {
	Config  string `kong:"default='tables.hcl',help='HCL table configuration file'"`
	Table   string `kong:"default='main',help='Table name from the configuration'"`
	Tables  int    `kong:"default='4',help='Number of tables to run concurrently'"`
	Players int    `kong:"default='6',help='Players per table'"`
	Hands   int    `kong:"default='1000',help='Hands to play per table'"`
	Seed    int64  `kong:"default='1',help='Base RNG seed; table i uses seed+i'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := loadTableConfig(c.Config, c.Table)
	if err != nil {
		return err
	}
	// Timers are pointless when bots act synchronously.
	cfg.TurnTimeoutSec = -1

	logger.Info("starting simulation",
		"tables", c.Tables,
		"players", c.Players,
		"hands_per_table", c.Hands,
		"variant", cfg.Variant)

	var totalHands atomic.Int64
	start := time.Now()

	var g errgroup.Group
	for i := 0; i < c.Tables; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(c.Seed + int64(i)))
			e, err := game.NewEngine(cfg, game.WithRNG(rng))
			if err != nil {
				return err
			}
			if err := seatBots(e, c.Players); err != nil {
				return err
			}
			played, err := playHands(e, c.Hands, rng)
			totalHands.Add(int64(played))
			if err != nil {
				return err
			}
			logger.Debug("table finished", "table", i, "hands", played)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	hands := totalHands.Load()
	logger.Info("simulation complete",
		"hands", hands,
		"elapsed", elapsed.Round(time.Millisecond),
		"hands_per_sec", int(float64(hands)/elapsed.Seconds()))
	return nil
}
