package advisor

// sizeBet picks the larger of the floor and the pot-derived target, capped by
// the largest amount hero may put in.
func sizeBet(base, potFraction, limit float64) float64 {
	return clamp(max(base, potFraction), 0, limit)
}
