package poker

import (
	"math/bits"
)

// HandRank orders made hands. Larger values are stronger; zero means the
// input was not a 5-7 card hand.
//
// The category sits above bit 20 and up to five tie-break ranks fill the
// nibbles below it, most significant first.
type HandRank uint32

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const typeShift = 20

var handTypeNames = [...]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

func (t HandType) String() string {
	if int(t) < len(handTypeNames) {
		return handTypeNames[t]
	}
	return "Unknown"
}

// Type returns the category of the hand (pair, flush, etc.).
func (hr HandRank) Type() HandType {
	return HandType(hr >> typeShift)
}

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	if hr == 0 {
		return "Unknown"
	}
	return hr.Type().String()
}

// Evaluate ranks the best five card hand contained in a 5-7 card hand.
func Evaluate(hand Hand) HandRank {
	if n := hand.CountCards(); n < 5 || n > 7 {
		return 0
	}

	var suitMasks [4]uint16
	var all uint16
	for suit := uint8(0); suit < 4; suit++ {
		suitMasks[suit] = hand.GetSuitMask(suit)
		all |= suitMasks[suit]
	}
	return rankFromMasks(suitMasks, all)
}

func rankFromMasks(suitMasks [4]uint16, all uint16) HandRank {
	for _, suited := range suitMasks {
		if bits.OnesCount16(suited) < 5 {
			continue
		}
		// At most one suit can hold five of seven cards.
		if high, ok := straightHigh(suited); ok {
			return makeRank(StraightFlush, high)
		}
		return makeRank(Flush, topRanks(suited, 5)...)
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quads := s0 & s1 & s2 & s3
	trips := ((s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)) &^ quads
	pairs := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ (trips | quads)

	if quads != 0 {
		quad := highest(quads)
		return makeRank(FourOfAKind, quad, highest(all&^bit(quad)))
	}

	if trips != 0 {
		trip := highest(trips)
		if rest := pairs | trips&^bit(trip); rest != 0 {
			return makeRank(FullHouse, trip, highest(rest))
		}
	}

	if high, ok := straightHigh(all); ok {
		return makeRank(Straight, high)
	}

	if trips != 0 {
		trip := highest(trips)
		return makeRank(ThreeOfAKind, append([]uint8{trip}, topRanks(all&^bit(trip), 2)...)...)
	}

	if pairs != 0 {
		high := highest(pairs)
		if low := pairs &^ bit(high); low != 0 {
			second := highest(low)
			kicker := highest(all &^ bit(high) &^ bit(second))
			return makeRank(TwoPair, high, second, kicker)
		}
		return makeRank(Pair, append([]uint8{high}, topRanks(all&^bit(high), 3)...)...)
	}

	return makeRank(HighCard, topRanks(all, 5)...)
}

func makeRank(t HandType, ranks ...uint8) HandRank {
	r := HandRank(t) << typeShift
	for i, rank := range ranks {
		r |= HandRank(rank) << (16 - 4*i)
	}
	return r
}

func bit(rank uint8) uint16 {
	return 1 << rank
}

func highest(mask uint16) uint8 {
	return uint8(bits.Len16(mask) - 1)
}

// topRanks returns the n highest ranks in mask, descending.
func topRanks(mask uint16, n int) []uint8 {
	ranks := make([]uint8, 0, n)
	for mask != 0 && len(ranks) < n {
		top := highest(mask)
		ranks = append(ranks, top)
		mask &^= bit(top)
	}
	return ranks
}

// straightHigh returns the high rank of the best straight in mask. The wheel
// (A-2-3-4-5) is five high.
func straightHigh(mask uint16) (uint8, bool) {
	const wheel = 0x100F
	mask &= rankMask

	if seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4); seq != 0 {
		return highest(seq) + 4, true
	}
	if mask&wheel == wheel {
		return Five, true
	}
	return 0, false
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}
