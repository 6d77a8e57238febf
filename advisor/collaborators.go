package advisor

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// EquityFunc estimates the probability that hero's hole cards beat the given
// number of random opponent hands on the given board.
type EquityFunc func(hole, board []string, opponents int) (float64, error)

// HandEvaluator names hero's best hand from hole and board cards (5 to 7 cards).
// It is purely cosmetic: the label only ever ends up in the Decision.
type HandEvaluator interface {
	EvaluateHand(cards []string) (string, error)
}

// HandEvaluatorFunc adapts a plain function to HandEvaluator.
type HandEvaluatorFunc func(cards []string) (string, error)

// EvaluateHand calls f(cards).
func (f HandEvaluatorFunc) EvaluateHand(cards []string) (string, error) {
	return f(cards)
}

// Source supplies uniform draws in [0,1) for the stochastic pre-flop raise.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

// Float64 calls f().
func (f SourceFunc) Float64() float64 { return f() }

var (
	// ErrInvalidEquity is reported when an equity function returns a value outside [0,1]
	ErrInvalidEquity = errors.New("equity out of range")
	// ErrEmptyLabel is reported when an evaluator succeeds without naming the hand
	ErrEmptyLabel = errors.New("evaluator returned empty label")
)

// callEquity invokes fn and converts panics and out-of-range results into errors.
func callEquity(fn EquityFunc, hole, board []string, opponents int) (equity float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			equity, err = 0, fmt.Errorf("equity function panicked: %v", r)
		}
	}()

	equity, err = fn(slices.Clone(hole), slices.Clone(board), opponents)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(equity) || equity < 0 || equity > 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEquity, equity)
	}
	return equity, nil
}

func callEvaluator(ev HandEvaluator, cards []string) (label string, err error) {
	defer func() {
		if r := recover(); r != nil {
			label, err = "", fmt.Errorf("hand evaluator panicked: %v", r)
		}
	}()

	label, err = ev.EvaluateHand(cards)
	if err != nil {
		return "", err
	}
	if label == "" {
		return "", ErrEmptyLabel
	}
	return label, nil
}
