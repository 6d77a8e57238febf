// Package poker provides the card representation and hand ranking used by the
// default advisor collaborators.
//
// A Card is a single bit at index suit*13 + rank, and a Hand is the union of
// its cards, so set operations on hands are plain bitwise operations.
package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Card is one playing card encoded as a single bit.
type Card uint64

// Hand is a set of cards.
type Hand uint64

// Ranks, deuce through ace.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits.
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
	rankMask  = 0x1FFF
)

var (
	// ErrInvalidCard is returned for tokens that are not rank+suit pairs
	ErrInvalidCard = errors.New("invalid card")
	// ErrDuplicateCard is returned when the same card appears twice
	ErrDuplicateCard = errors.New("duplicate card")
)

// NewCard builds a card from a rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (uint(suit)*13 + uint(rank))
}

func (c Card) index() int {
	return bits.TrailingZeros64(uint64(c))
}

// Valid reports whether c is exactly one of the 52 cards.
func (c Card) Valid() bool {
	return bits.OnesCount64(uint64(c)) == 1 && c.index() < 52
}

// Rank returns 0 (deuce) through 12 (ace).
func (c Card) Rank() uint8 {
	return uint8(c.index() % 13)
}

// Suit returns 0 (clubs) through 3 (spades).
func (c Card) Suit() uint8 {
	return uint8(c.index() / 13)
}

// String returns the two character form, e.g. "As".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// ParseCard parses a rank+suit token such as "As", "td" or "10h".
func ParseCard(s string) (Card, error) {
	token := strings.TrimSpace(s)
	if len(token) == 3 && token[:2] == "10" {
		token = "T" + token[2:]
	}
	if len(token) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank := strings.IndexByte(rankChars, upper(token[0]))
	suit := strings.IndexByte(suitChars, lower(token[1]))
	if rank < 0 || suit < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseCards parses a list of tokens, rejecting duplicates.
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	var seen Hand
	for _, tok := range tokens {
		card, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		if seen.HasCard(card) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen.AddCard(card)
		cards = append(cards, card)
	}
	return cards, nil
}

// ParseHand parses tokens into a Hand, rejecting duplicates.
func ParseHand(tokens ...string) (Hand, error) {
	cards, err := ParseCards(tokens)
	if err != nil {
		return 0, err
	}
	return NewHand(cards...), nil
}

// SplitCards breaks a compact string like "AsKd" or "As Kd" into tokens.
func SplitCards(s string) []string {
	compact := strings.Join(strings.Fields(strings.ReplaceAll(s, ",", " ")), "")
	compact = strings.ReplaceAll(compact, "10", "T")
	var tokens []string
	for i := 0; i+1 < len(compact); i += 2 {
		tokens = append(tokens, compact[i:i+2])
	}
	if len(compact)%2 == 1 {
		tokens = append(tokens, compact[len(compact)-1:])
	}
	return tokens
}

// NewHand creates a hand holding the given cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// AddCard adds c to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard reports whether c is in the hand.
func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns a 13-bit rank mask of the cards in suit.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16(uint64(h)>>(uint(suit)*13)) & rankMask
}

// Cards lists the hand's cards in bit order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rest := uint64(h); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(rest&-rest))
	}
	return cards
}

func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
