package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/pokeradvisor/advisor"
	"github.com/lox/pokeradvisor/analysis"
	"github.com/lox/pokeradvisor/internal/config"
	"github.com/lox/pokeradvisor/poker"
)

type DecideCmd struct {
	Hole        string  `short:"H" required:"" help:"Hero hole cards, e.g. 'AsKd'"`
	Board       string  `short:"b" help:"Community cards, e.g. 'Ah7c2d'"`
	Pot         float64 `short:"p" help:"Total pot before hero acts"`
	Call        float64 `help:"Amount hero must put in to call"`
	MinBet      float64 `help:"Minimum legal bet or raise"`
	MaxBet      float64 `help:"Maximum legal bet or raise (defaults to stack)"`
	Stack       float64 `short:"s" default:"100" help:"Hero's remaining stack"`
	BigBlind    float64 `default:"1" help:"Big blind size"`
	Seats       int     `default:"2" help:"Seats still in the hand, hero included"`
	Legal       string  `short:"l" help:"Comma separated legal actions (default inferred from --call)"`
	Wait        bool    `help:"Ask as if it is not hero's turn"`
	Profile     string  `short:"P" help:"Tuning profile (see 'profiles')"`
	Seed        *int64  `help:"Random seed for reproducible results"`
	Simulations int     `short:"n" help:"Monte Carlo simulations (overrides config)"`
	JSON        bool    `help:"Print the decision as JSON"`
}

func (c *DecideCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	snapshot, err := c.snapshot()
	if err != nil {
		return err
	}

	engineCfg, err := cfg.EngineConfig(c.Profile)
	if err != nil {
		return err
	}

	seed := resolveSeed(c.Seed, cfg)
	engine, err := advisor.New(engineCfg,
		advisor.WithEvaluator(poker.Evaluator{}),
		advisor.WithSeed(seed),
		advisor.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	equity := analysis.WithTimeout(c.calculator(cfg, seed).EquityFuncContext(), cfg.Timeout(), quartz.NewReal())
	decision := engine.Decide(snapshot, equity)

	logger.Debug().
		Int64("seed", seed).
		Str("profile", cfg.Profile).
		Str("decision", decision.String()).
		Msg("decided")

	if c.JSON {
		return writeDecisionJSON(os.Stdout, decision)
	}
	renderDecision(os.Stdout, snapshot, decision)
	return nil
}

func (c *DecideCmd) calculator(cfg *config.Config, seed int64) analysis.Calculator {
	calc := analysis.Calculator{Seed: seed}
	if cfg.Equity != nil {
		calc.Simulations = cfg.Equity.Simulations
		calc.Workers = cfg.Equity.Workers
	}
	if c.Simulations > 0 {
		calc.Simulations = c.Simulations
	}
	return calc
}

// snapshot turns the command line into the engine's table view. Cards are
// validated here so typos are reported rather than silently treated as a
// failed equity estimate.
func (c *DecideCmd) snapshot() (advisor.Snapshot, error) {
	hole := poker.SplitCards(c.Hole)
	board := poker.SplitCards(c.Board)
	if _, err := poker.ParseHand(append(append([]string{}, hole...), board...)...); err != nil {
		return advisor.Snapshot{}, err
	}
	if len(hole) != 2 {
		return advisor.Snapshot{}, fmt.Errorf("need exactly 2 hole cards, got %d", len(hole))
	}
	if len(board) > 5 {
		return advisor.Snapshot{}, fmt.Errorf("board cannot have more than 5 cards")
	}
	if len(board) > 0 && len(board) < 3 {
		return advisor.Snapshot{}, fmt.Errorf("board must have 0 or 3-5 cards, got %d", len(board))
	}

	legal := c.Legal
	if legal == "" {
		legal = "check,bet,fold"
		if c.Call > 0 {
			legal = "call,raise,fold"
		}
	}
	caps, err := advisor.ParseCapabilities(legal)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	maxBet := c.MaxBet
	if maxBet == 0 {
		maxBet = c.Stack
	}
	minBet := c.MinBet
	if minBet == 0 {
		minBet = c.BigBlind
	}

	return advisor.Snapshot{
		HeroTurn: !c.Wait,
		Acting: &advisor.ActingContext{
			Capabilities: caps,
			CallAmount:   c.Call,
			MinBet:       minBet,
			MaxBet:       maxBet,
			Stack:        c.Stack,
		},
		HoleCards:   hole,
		BoardCards:  board,
		TotalPot:    c.Pot,
		BigBlind:    c.BigBlind,
		ActiveSeats: c.Seats,
	}, nil
}

func resolveSeed(flag *int64, cfg *config.Config) int64 {
	switch {
	case flag != nil:
		return *flag
	case cfg.Seed != 0:
		return cfg.Seed
	default:
		return time.Now().UnixNano()
	}
}

type decisionJSON struct {
	Action     string  `json:"action"`
	Code       uint8   `json:"code"`
	Amount     float64 `json:"amount"`
	Name       string  `json:"name"`
	Reason     string  `json:"reason"`
	Equity     float64 `json:"equity"`
	Confidence float64 `json:"confidence"`
	HandLabel  string  `json:"hand_label,omitempty"`
}

func writeDecisionJSON(w io.Writer, d advisor.Decision) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(decisionJSON{
		Action:     d.Action.String(),
		Code:       uint8(d.Action),
		Amount:     d.Amount,
		Name:       d.Name,
		Reason:     d.Reason,
		Equity:     d.Equity,
		Confidence: d.Confidence,
		HandLabel:  d.HandLabel,
	})
}
