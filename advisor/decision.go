package advisor

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Decision is the single recommendation produced by Engine.Decide.
type Decision struct {
	Action     ActionKind
	Amount     float64
	Name       string
	Reason     string
	Equity     float64
	Confidence float64
	// HandLabel is the evaluator's label, empty when none was produced. The
	// generic "strong hand" wording used without a label lives in Reason.
	HandLabel  string
}

// HasHandLabel reports whether an evaluator supplied a label.
func (d Decision) HasHandLabel() bool {
	return d.HandLabel != ""
}

func (d Decision) String() string {
	if d.Amount > 0 {
		return fmt.Sprintf("%s %s (equity %.2f, %s)", d.Name, decimal.NewFromFloat(d.Amount).StringFixed(2), d.Equity, d.Reason)
	}
	return fmt.Sprintf("%s (equity %.2f, %s)", d.Name, d.Equity, d.Reason)
}

// Confidence maps equity onto [0,1]: zero at a coin flip, one at certainty.
func Confidence(equity float64) float64 {
	return clamp(math.Abs(equity-0.5)*2, 0, 1)
}

// roundChips rounds to two decimal places, half away from zero.
func roundChips(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func truncateChips(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Truncate(2).InexactFloat64()
}

func waitDecision(reason string) Decision {
	return Decision{
		Action:     ActionNone,
		Name:       "WAIT",
		Reason:     reason,
		Equity:     neutralEquity,
		Confidence: 0,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
