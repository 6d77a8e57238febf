package poker

import (
	"fmt"

	"github.com/lox/pokeradvisor/advisor"
)

var _ advisor.HandEvaluator = Evaluator{}

// Evaluator names the made hand formed by hole and board cards.
type Evaluator struct{}

// EvaluateHand returns the hand type label ("Two Pair", "Flush", ...) for
// 5-7 distinct cards.
func (Evaluator) EvaluateHand(cards []string) (string, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return "", fmt.Errorf("evaluate hand: need 5-7 cards, got %d", len(cards))
	}
	hand, err := ParseHand(cards...)
	if err != nil {
		return "", fmt.Errorf("evaluate hand: %w", err)
	}
	return Evaluate(hand).String(), nil
}
