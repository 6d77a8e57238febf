package advisor

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allCapabilityMasks returns every legality combination that offers at least
// one of check, call or fold.
func allCapabilityMasks() []Capabilities {
	var masks []Capabilities
	for m := Capabilities(0); m < 1<<7; m++ {
		if m.Allows(ActionCheck) || m.Allows(ActionCall) || m.Allows(ActionFold) {
			masks = append(masks, m)
		}
	}
	return masks
}

func TestDecisionsStayLegalAndBounded(t *testing.T) {
	t.Parallel()

	boards := [][]string{
		nil,
		{"Ah", "7c", "2d"},
		{"Ah", "7c", "2d", "Ks"},
		{"Ah", "7c", "2d", "Ks", "9s"},
	}
	type money struct{ call, pot, stack, minBet float64 }
	spots := []money{
		{0, 15, 1000, 10},
		{10, 40, 1000, 20},
		{250, 100, 180, 20},
		{5, 0, 37.5, 50},
		{0, 0, 0, 0},
	}

	for _, draw := range []float64{0, 0.5, 0.999} {
		e, err := New(DefaultConfig(), WithRandom(SourceFunc(func() float64 { return draw })))
		require.NoError(t, err)

		for _, board := range boards {
			for _, sp := range spots {
				for _, caps := range allCapabilityMasks() {
					for i := 0; i <= 20; i++ {
						equity := float64(i) / 20
						s := Snapshot{
							HeroTurn: true,
							Acting: &ActingContext{
								Capabilities: caps,
								CallAmount:   sp.call,
								MinBet:       sp.minBet,
								MaxBet:       sp.stack,
								Stack:        sp.stack,
							},
							HoleCards:   []string{"Qs", "Qh"},
							BoardCards:  board,
							TotalPot:    sp.pot,
							ActiveSeats: 4,
						}
						d := e.Decide(s, fixedEquity(equity))
						where := fmt.Sprintf("board=%d caps=%s equity=%.2f spot=%+v draw=%v", len(board), caps, equity, sp, draw)

						if !assert.True(t, caps.Allows(d.Action), "illegal action %s at %s", d.Action, where) {
							return
						}
						assert.GreaterOrEqual(t, d.Amount, 0.0, where)
						assert.LessOrEqual(t, d.Amount, sp.stack, where)
						assert.Equal(t, d.Amount, math.Round(d.Amount*100)/100, where)
						assert.Equal(t, math.Min(1, math.Max(0, math.Abs(equity-0.5)*2)), d.Confidence, where)
						assert.Equal(t, equity, d.Equity, where)
					}
				}
			}
		}
	}
}

func TestWaitIgnoresEverythingElse(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	for _, caps := range allCapabilityMasks() {
		s := Snapshot{
			HeroTurn:    false,
			Acting:      &ActingContext{Capabilities: caps, CallAmount: 50, Stack: 100},
			HoleCards:   []string{"As", "Ad"},
			BoardCards:  []string{"Ah", "Ac", "2d"},
			TotalPot:    500,
			ActiveSeats: 2,
		}
		d := e.Decide(s, fixedEquity(1))
		require.Equal(t, ActionNone, d.Action)
		require.Equal(t, "WAIT", d.Name)
	}
}

func TestConfidence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Confidence(0))
	assert.Equal(t, 1.0, Confidence(1))
	assert.Equal(t, 0.0, Confidence(0.5))
	assert.InDelta(t, 0.6, Confidence(0.8), 1e-12)
	assert.InDelta(t, 0.6, Confidence(0.2), 1e-12)
	assert.Equal(t, 1.0, Confidence(1.7), "clamped")
}

func TestSizeBet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 75.0, sizeBet(20, 75, 1000))
	assert.Equal(t, 20.0, sizeBet(20, 5, 1000))
	assert.Equal(t, 50.0, sizeBet(20, 75, 50))
	assert.Equal(t, 0.0, sizeBet(-5, -10, 50))
	assert.Equal(t, 0.0, sizeBet(20, 75, 0))
}
