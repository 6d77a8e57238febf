package advisor

// Pre-flop thresholds.
const (
	preflopOpenRaiseEquity = 0.72
	preflopPremiumEquity   = 0.70
	preflopPFRMinEquity    = 0.55

	preflopOpenPotMultiple  = 2.5
	preflop3BetCallMultiple = 3.0
	preflopPFRCallMultiple  = 2.5
)

func (e *Engine) preflop(sp *spot) Decision {
	ac := sp.acting

	if sp.legal.check {
		if sp.equity > preflopOpenRaiseEquity && sp.legal.raise {
			return sp.act(ActionRaise, sizeBet(ac.MinBet, sp.pot*preflopOpenPotMultiple, sp.sizeCap), "RAISE", "strong preflop, raising")
		}
		return sp.check("free check preflop")
	}

	switch {
	case sp.equity > preflopPremiumEquity:
		if sp.legal.raise {
			return sp.act(ActionRaise, sizeBet(ac.MinBet, ac.CallAmount*preflop3BetCallMultiple, sp.sizeCap), "3-BET", "premium preflop, 3-betting")
		}
		if sp.legal.call {
			return sp.call("premium preflop, raise unavailable")
		}

	case sp.equity > e.cfg.VPIP:
		minCallingEquity := sp.potOdds * (1 + e.cfg.Aggression)
		if sp.equity >= minCallingEquity {
			// the draw is only taken once the raise is otherwise justified
			if sp.legal.raise && sp.equity > preflopPFRMinEquity && e.rng.Float64() < e.cfg.PFR {
				return sp.act(ActionRaise, sizeBet(ac.MinBet, ac.CallAmount*preflopPFRCallMultiple, sp.sizeCap), "RAISE", "PFR spot")
			}
			if sp.legal.call {
				return sp.call("+EV call")
			}
		}
	}

	return sp.fallback("weak hand, price too high", "default check")
}
