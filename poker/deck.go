package poker

import (
	"math/rand/v2"
)

// Deck is the set of cards still available to deal.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a full 52 card deck drawing randomness from rng.
func NewDeck(rng *rand.Rand) *Deck {
	return NewDeckExcluding(0, rng)
}

// NewDeckExcluding creates a deck without the cards in dead.
func NewDeckExcluding(dead Hand, rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52), rng: rng}
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			if c := NewCard(rank, suit); !dead.HasCard(c) {
				d.cards = append(d.cards, c)
			}
		}
	}
	return d
}

// Deal draws n random cards, or nil when fewer than n remain. Cards are
// chosen with a partial Fisher-Yates pass so only n swaps are made.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	for i := d.next; i < d.next+n; i++ {
		j := i + d.rng.IntN(len(d.cards)-i)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	dealt := d.cards[d.next : d.next+n : d.next+n]
	d.next += n
	return dealt
}

// Reset returns every dealt card to the deck.
func (d *Deck) Reset() {
	d.next = 0
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
