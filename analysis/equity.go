// Package analysis provides Monte Carlo equity estimation for the advisor.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lox/pokeradvisor/advisor"
	"github.com/lox/pokeradvisor/internal/randutil"
	"github.com/lox/pokeradvisor/poker"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSimulations is used when Calculator.Simulations is not set.
	DefaultSimulations = 2000
	// MaxOpponents bounds the number of random opponent hands dealt.
	MaxOpponents = 9

	cancelCheckInterval = 256
)

// ErrInvalidHand is returned when hole or board cards cannot be simulated.
var ErrInvalidHand = errors.New("invalid hand")

// EquityResult represents the result of an equity calculation
type EquityResult struct {
	Wins  uint32
	Ties  uint32
	Total uint32
	// Split is hero's summed pot share from ties: 1/2 for a heads-up chop,
	// 1/3 for a three-way chop and so on.
	Split float64
}

// WinRate returns the fraction of outright wins (0.0 to 1.0)
func (e EquityResult) WinRate() float64 {
	if e.Total == 0 {
		return 0.0
	}
	return float64(e.Wins) / float64(e.Total)
}

// TieRate returns the fraction of split pots (0.0 to 1.0)
func (e EquityResult) TieRate() float64 {
	if e.Total == 0 {
		return 0.0
	}
	return float64(e.Ties) / float64(e.Total)
}

// Equity returns the overall equity (0.0 to 1.0)
// Wins count as 1.0, ties count as hero's share of the split pot
func (e EquityResult) Equity() float64 {
	if e.Total == 0 {
		return 0.0
	}
	return (float64(e.Wins) + e.Split) / float64(e.Total)
}

// ConfidenceInterval returns the 95% confidence interval for equity
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	if e.Total == 0 {
		return 0.0, 0.0
	}
	equity := e.Equity()
	margin := 1.96 * math.Sqrt(equity*(1.0-equity)/float64(e.Total))
	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}

func (e *EquityResult) add(o EquityResult) {
	e.Wins += o.Wins
	e.Ties += o.Ties
	e.Total += o.Total
	e.Split += o.Split
}

// Calculator estimates equity by dealing random boards and opponent hands.
type Calculator struct {
	Simulations int
	Workers     int
	Seed        int64
}

// Calculate runs the simulation for hero's two hole cards against opponents
// random hands. The board may hold 0-5 cards.
func (c Calculator) Calculate(ctx context.Context, hole, board []string, opponents int) (EquityResult, error) {
	if len(hole) != 2 {
		return EquityResult{}, fmt.Errorf("%w: need 2 hole cards, got %d", ErrInvalidHand, len(hole))
	}
	if len(board) > 5 {
		return EquityResult{}, fmt.Errorf("%w: board has %d cards", ErrInvalidHand, len(board))
	}
	heroCards, err := poker.ParseHand(hole...)
	if err != nil {
		return EquityResult{}, fmt.Errorf("%w: %w", ErrInvalidHand, err)
	}
	boardCards, err := poker.ParseHand(board...)
	if err != nil {
		return EquityResult{}, fmt.Errorf("%w: %w", ErrInvalidHand, err)
	}
	if heroCards&boardCards != 0 {
		return EquityResult{}, fmt.Errorf("%w: %w: %s", ErrInvalidHand, poker.ErrDuplicateCard, heroCards&boardCards)
	}
	opponents = min(max(opponents, 1), MaxOpponents)

	sims := c.Simulations
	if sims <= 0 {
		sims = DefaultSimulations
	}
	workers := min(max(c.Workers, 1), sims)

	results := make([]EquityResult, workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		share := sims / workers
		if i < sims%workers {
			share++
		}
		rng := randutil.New(c.Seed + int64(i))
		g.Go(func() error {
			res, err := simulate(ctx, heroCards, boardCards, opponents, share, rng)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	var total EquityResult
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}

// ContextEquityFunc is an equity estimate that stops early once ctx is done.
type ContextEquityFunc func(ctx context.Context, hole, board []string, opponents int) (float64, error)

// EquityFuncContext exposes Calculate as a cancellable equity estimate.
func (c Calculator) EquityFuncContext() ContextEquityFunc {
	return func(ctx context.Context, hole, board []string, opponents int) (float64, error) {
		res, err := c.Calculate(ctx, hole, board, opponents)
		if err != nil {
			return 0, err
		}
		return res.Equity(), nil
	}
}

// EquityFunc adapts the calculator to the advisor's equity collaborator.
// Use WithTimeout to bound it.
func (c Calculator) EquityFunc() advisor.EquityFunc {
	fn := c.EquityFuncContext()
	return func(hole, board []string, opponents int) (float64, error) {
		return fn(context.Background(), hole, board, opponents)
	}
}

func simulate(ctx context.Context, hero, board poker.Hand, opponents, sims int, rng *rand.Rand) (EquityResult, error) {
	deck := poker.NewDeckExcluding(hero|board, rng)
	boardNeeded := 5 - board.CountCards()

	var res EquityResult
	for sim := 0; sim < sims; sim++ {
		if sim%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		deck.Reset()
		cards := deck.Deal(boardNeeded + 2*opponents)
		finalBoard := board | poker.NewHand(cards[:boardNeeded]...)
		heroStrength := poker.Evaluate(hero | finalBoard)

		heroWins, tiedWith := true, 0
		for opp := cards[boardNeeded:]; len(opp) >= 2; opp = opp[2:] {
			oppStrength := poker.Evaluate(poker.NewHand(opp[0], opp[1]) | finalBoard)
			cmp := poker.CompareHands(heroStrength, oppStrength)
			if cmp < 0 {
				heroWins = false
				break
			}
			if cmp == 0 {
				tiedWith++
			}
		}

		res.Total++
		if !heroWins {
			continue
		}
		if tiedWith > 0 {
			res.Ties++
			res.Split += 1 / float64(tiedWith+1)
		} else {
			res.Wins++
		}
	}
	return res, nil
}
