package advisor

// Post-flop thresholds.
const (
	postflopStrongEquity = 0.65
	postflopDecentEquity = 0.40
	postflopCallMargin   = 1.15

	postflopBetPotFraction   = 0.6
	postflopRaisePotFraction = 0.7
	postflopRaiseCallFactor  = 2.0
)

func (e *Engine) postflop(sp *spot) Decision {
	ac := sp.acting

	switch {
	case sp.equity > postflopStrongEquity:
		strength := "strong hand"
		if sp.label != "" {
			strength = sp.label
		}
		if sp.legal.check {
			size := sizeBet(ac.MinBet, sp.pot*postflopBetPotFraction, sp.sizeCap)
			switch {
			case sp.legal.bet:
				return sp.act(ActionBet, size, "BET", strength+", value bet")
			case sp.legal.raise:
				return sp.act(ActionRaise, size, "RAISE", strength+", value bet")
			}
			return sp.check(strength + ", no bet available")
		}
		if sp.legal.raise {
			size := sizeBet(ac.CallAmount*postflopRaiseCallFactor, sp.pot*postflopRaisePotFraction, sp.sizeCap)
			return sp.act(ActionRaise, size, "RAISE", strength+", raising for value")
		}
		if sp.legal.call {
			return sp.call(strength + ", calling")
		}

	case sp.equity > postflopDecentEquity:
		if sp.legal.check {
			return sp.check("decent hand")
		}
		if sp.equity > sp.potOdds*postflopCallMargin && sp.legal.call {
			return sp.call("+EV call")
		}
		if sp.legal.fold {
			return sp.fold("bad price")
		}
	}

	if sp.legal.check {
		return sp.check("weak hand, checking free")
	}
	return sp.fallback("weak hand", "default")
}
