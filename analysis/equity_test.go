package analysis

import (
	"context"
	"testing"

	"github.com/lox/pokeradvisor/advisor"
	"github.com/lox/pokeradvisor/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquityResult(t *testing.T) {
	t.Parallel()

	result := EquityResult{Wins: 300, Ties: 50, Total: 1000, Split: 25}
	assert.InDelta(t, 0.3, result.WinRate(), 1e-9)
	assert.InDelta(t, 0.05, result.TieRate(), 1e-9)
	assert.InDelta(t, 0.325, result.Equity(), 1e-9)

	var empty EquityResult
	assert.Zero(t, empty.Equity())
	lower, upper := empty.ConfidenceInterval()
	assert.Zero(t, lower)
	assert.Zero(t, upper)
}

func TestConfidenceInterval(t *testing.T) {
	t.Parallel()

	result := EquityResult{Wins: 500, Total: 10000}
	require.InDelta(t, 0.05, result.Equity(), 1e-9)

	lower, upper := result.ConfidenceInterval()
	assert.InDelta(t, 0.0457, lower, 0.001)
	assert.InDelta(t, 0.0543, upper, 0.001)

	sure := EquityResult{Wins: 10, Total: 10}
	lower, upper = sure.ConfidenceInterval()
	assert.Equal(t, 1.0, lower)
	assert.Equal(t, 1.0, upper)
}

func TestCalculateValidatesInput(t *testing.T) {
	t.Parallel()

	calc := Calculator{Simulations: 10}
	ctx := context.Background()

	tests := map[string]struct {
		hole, board []string
	}{
		"one hole card":    {hole: []string{"As"}},
		"three hole cards": {hole: []string{"As", "Kd", "Qc"}},
		"six board cards":  {hole: []string{"As", "Kd"}, board: []string{"2c", "3c", "4c", "5c", "6c", "7c"}},
		"bad card":         {hole: []string{"As", "Xd"}},
		"duplicate hole":   {hole: []string{"As", "as"}},
		"hole on board":    {hole: []string{"As", "Kd"}, board: []string{"2c", "As", "4c"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := calc.Calculate(ctx, tc.hole, tc.board, 1)
			assert.ErrorIs(t, err, ErrInvalidHand)
		})
	}

	_, err := calc.Calculate(ctx, []string{"As", "Kd"}, []string{"2c", "As", "4c"}, 1)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
}

func TestCalculateCountsEverySimulation(t *testing.T) {
	t.Parallel()

	res, err := Calculator{Simulations: 1001, Workers: 4, Seed: 3}.Calculate(context.Background(), []string{"7h", "2c"}, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(1001), res.Total)
	assert.LessOrEqual(t, res.Wins+res.Ties, res.Total)

	res, err = Calculator{Simulations: 3, Workers: 8}.Calculate(context.Background(), []string{"7h", "2c"}, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), res.Total, "workers are capped by simulations")
}

func TestCalculateIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	calc := Calculator{Simulations: 500, Workers: 3, Seed: 99}
	a, err := calc.Calculate(context.Background(), []string{"Qs", "Jh"}, []string{"Ts", "9d", "2c"}, 2)
	require.NoError(t, err)
	b, err := calc.Calculate(context.Background(), []string{"Qs", "Jh"}, []string{"Ts", "9d", "2c"}, 2)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculateSanity(t *testing.T) {
	t.Parallel()

	calc := Calculator{Simulations: 4000, Workers: 4, Seed: 1}
	ctx := context.Background()

	aces, err := calc.Calculate(ctx, []string{"As", "Ad"}, nil, 1)
	require.NoError(t, err)
	assert.Greater(t, aces.Equity(), 0.8)

	trash, err := calc.Calculate(ctx, []string{"7h", "2c"}, nil, 1)
	require.NoError(t, err)
	assert.Less(t, trash.Equity(), 0.4)

	// quads on a dry river cannot lose
	nuts, err := calc.Calculate(ctx, []string{"As", "Ad"}, []string{"Ah", "Ac", "7d", "2s", "9h"}, 5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, nuts.Equity())
}

func TestCalculateSplitsPotsByTiedPlayers(t *testing.T) {
	t.Parallel()

	calc := Calculator{Simulations: 600, Workers: 3, Seed: 1}
	royal := []string{"As", "Ks", "Qs", "Js", "Ts"}

	tests := map[string]struct {
		opponents int
		equity    float64
	}{
		"heads up chop":   {opponents: 1, equity: 1.0 / 2},
		"three way chop":  {opponents: 2, equity: 1.0 / 3},
		"five way chop":   {opponents: 4, equity: 1.0 / 5},
		"full table chop": {opponents: MaxOpponents, equity: 1.0 / 10},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			// the board plays for everyone
			res, err := calc.Calculate(context.Background(), []string{"2c", "3d"}, royal, tc.opponents)
			require.NoError(t, err)
			assert.Zero(t, res.Wins)
			assert.Equal(t, res.Total, res.Ties)
			assert.InDelta(t, tc.equity, res.Equity(), 1e-9)
		})
	}
}

func TestCalculateSplitsOnlyWithPlayersWhoTie(t *testing.T) {
	t.Parallel()

	// hero holds the nut straight; only an opponent with a ten can chop
	res, err := Calculator{Simulations: 4000, Workers: 2, Seed: 6}.Calculate(
		context.Background(), []string{"Tc", "3d"}, []string{"Ah", "Kd", "Qc", "Js", "2h"}, 2)
	require.NoError(t, err)
	assert.Equal(t, res.Total, res.Wins+res.Ties, "the nuts never lose")
	require.Positive(t, res.Ties)

	// heads-up chops are credited a half, three-way chops a third
	assert.Less(t, res.Split, float64(res.Ties)*0.5)
	assert.Greater(t, res.Split, float64(res.Ties)/3)
	assert.InDelta(t, (float64(res.Wins)+res.Split)/float64(res.Total), res.Equity(), 1e-9)
}
