package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/lox/pokeradvisor/analysis"
	"github.com/lox/pokeradvisor/poker"
)

type EquityCmd struct {
	Hole        string `arg:"" help:"Hero hole cards, e.g. 'AsKd'"`
	Board       string `short:"b" help:"Community cards, e.g. 'Ah7c2d'"`
	Opponents   int    `short:"o" default:"1" help:"Number of random opponent hands"`
	Simulations int    `short:"n" help:"Monte Carlo simulations (overrides config)"`
	Workers     int    `short:"w" help:"Parallel workers (overrides config)"`
	Seed        *int64 `help:"Random seed for reproducible results"`
}

func (c *EquityCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	calc := analysis.Calculator{Seed: resolveSeed(c.Seed, cfg)}
	if cfg.Equity != nil {
		calc.Simulations = cfg.Equity.Simulations
		calc.Workers = cfg.Equity.Workers
	}
	if c.Simulations > 0 {
		calc.Simulations = c.Simulations
	}
	if c.Workers > 0 {
		calc.Workers = c.Workers
	}

	hole := poker.SplitCards(c.Hole)
	board := poker.SplitCards(c.Board)

	start := time.Now()
	res, err := calc.Calculate(ctx, hole, board, c.Opponents)
	if err != nil {
		return err
	}
	logger.Debug().
		Dur("elapsed", time.Since(start)).
		Uint32("simulations", res.Total).
		Int("workers", calc.Workers).
		Msg("equity calculated")

	renderEquity(os.Stdout, hole, board, min(max(c.Opponents, 1), analysis.MaxOpponents), res)
	return nil
}
