package poker

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank())
	assert.Equal(t, Spades, aceSpades.Suit())
	assert.Equal(t, "As", aceSpades.String())
	assert.Equal(t, "2c", NewCard(Two, Clubs).String())
	assert.Equal(t, "??", Card(0).String())
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		wantCard Card
		wantErr  bool
	}{
		{input: "As", wantCard: NewCard(Ace, Spades)},
		{input: "2h", wantCard: NewCard(Two, Hearts)},
		{input: "Kd", wantCard: NewCard(King, Diamonds)},
		{input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{input: "tc", wantCard: NewCard(Ten, Clubs)},
		{input: "10c", wantCard: NewCard(Ten, Clubs)},
		{input: "aS", wantCard: NewCard(Ace, Spades)},
		{input: " 9s ", wantCard: NewCard(Nine, Spades)},
		{input: "Xs", wantErr: true},
		{input: "Ax", wantErr: true},
		{input: "", wantErr: true},
		{input: "A", wantErr: true},
		{input: "Asd", wantErr: true},
		{input: "11s", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCard, card)
		})
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			card := NewCard(rank, suit)
			require.True(t, card.Valid())
			str := card.String()
			assert.False(t, seen[str], "duplicate card %s", str)
			seen[str] = true

			parsed, err := ParseCard(str)
			require.NoError(t, err)
			assert.Equal(t, card, parsed)
		}
	}
	assert.Len(t, seen, 52)
}

func TestParseCardsRejectsDuplicates(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards([]string{"As", "Kd"})
	require.NoError(t, err)
	assert.Equal(t, []Card{NewCard(Ace, Spades), NewCard(King, Diamonds)}, cards)

	_, err = ParseCards([]string{"As", "Kd", "as"})
	assert.ErrorIs(t, err, ErrDuplicateCard)

	_, err = ParseHand("As", "Zz")
	assert.ErrorIs(t, err, ErrInvalidCard)

	hand, err := ParseHand("As", "Kd", "2c")
	require.NoError(t, err)
	assert.Equal(t, 3, hand.CountCards())
}

func TestSplitCards(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"As", "Kd"}, SplitCards("AsKd"))
	assert.Equal(t, []string{"Ah", "7c", "2d"}, SplitCards("Ah 7c, 2d"))
	assert.Equal(t, []string{"Tc", "9h"}, SplitCards("10c9h"))
	assert.Equal(t, []string{"As", "K"}, SplitCards("AsK"))
	assert.Empty(t, SplitCards(""))
}

func TestHandOperations(t *testing.T) {
	t.Parallel()

	aceSpades, _ := ParseCard("As")
	kingHearts, _ := ParseCard("Kh")
	queenDiamonds, _ := ParseCard("Qd")

	hand := NewHand(aceSpades, kingHearts)
	assert.True(t, hand.HasCard(aceSpades))
	assert.True(t, hand.HasCard(kingHearts))
	assert.False(t, hand.HasCard(queenDiamonds))
	assert.Equal(t, 2, hand.CountCards())

	hand.AddCard(queenDiamonds)
	assert.True(t, hand.HasCard(queenDiamonds))
	assert.Equal(t, 3, hand.CountCards())
	assert.Equal(t, "Qd Kh As", hand.String())
}

func TestHandBitset(t *testing.T) {
	t.Parallel()

	aceSpades, _ := ParseCard("As")
	aceHearts, _ := ParseCard("Ah")
	twoClubs, _ := ParseCard("2c")

	assert.Equal(t, 1, bits.OnesCount64(uint64(aceSpades)))
	assert.Zero(t, aceSpades&aceHearts)
	assert.Zero(t, aceSpades&twoClubs)
	assert.Zero(t, aceHearts&twoClubs)

	combined := Hand(aceSpades) | Hand(aceHearts) | Hand(twoClubs)
	assert.Equal(t, 3, combined.CountCards())
	assert.ElementsMatch(t, []Card{aceSpades, aceHearts, twoClubs}, combined.Cards())
}

func TestGetSuitMask(t *testing.T) {
	t.Parallel()

	var hand Hand
	for rank := uint8(0); rank < 13; rank++ {
		hand.AddCard(NewCard(rank, Spades))
	}
	assert.Equal(t, uint16(0x1FFF), hand.GetSuitMask(Spades))
	assert.Zero(t, hand.GetSuitMask(Hearts))
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
