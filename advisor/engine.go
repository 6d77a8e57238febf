// Package advisor recommends a single poker action for hero's current turn.
//
// The Engine is a stateless function of a Snapshot and an equity estimate: it
// guards against turns that are not hero's, acquires equity from an external
// EquityFunc, routes to the pre-flop or post-flop rule tree and sizes the
// resulting bet. Collaborator failures never reach the caller; they degrade to
// neutral equity and an absent hand label.
package advisor

import (
	"fmt"
	"math"

	"github.com/lox/pokeradvisor/internal/randutil"
	"github.com/rs/zerolog"
)

const neutralEquity = 0.5

// Config holds the behavioural tuning scalars, all in [0,1].
type Config struct {
	// Aggression loosens the equity needed to continue marginal pre-flop hands
	Aggression float64
	// VPIP is the equity floor below which pre-flop hands are not played voluntarily
	VPIP float64
	// PFR is the probability of upgrading a qualifying pre-flop call to a raise
	PFR float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Aggression: 0.35,
		VPIP:       0.25,
		PFR:        0.18,
	}
}

// Validate checks every scalar lies in [0,1].
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"aggression", c.Aggression},
		{"vpip", c.VPIP},
		{"pfr", c.PFR},
	} {
		if math.IsNaN(f.value) || f.value < 0 || f.value > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", f.name, f.value)
		}
	}
	return nil
}

// Engine produces decisions. It is safe for concurrent use as long as the
// configured Source and collaborators are.
type Engine struct {
	cfg       Config
	evaluator HandEvaluator
	rng       Source
	logger    zerolog.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithEvaluator sets the optional hand evaluator used for labelling.
func WithEvaluator(ev HandEvaluator) Option {
	return func(e *Engine) {
		e.evaluator = ev
	}
}

// WithRandom sets the source of the pre-flop raise draw.
func WithRandom(src Source) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = randutil.NewSource(seed)
	}
}

// WithLogger enables debug tracing of decisions.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New validates cfg and builds an Engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = randutil.TimeSource()
	}
	return e, nil
}

// Config returns a copy of the engine's tuning.
func (e *Engine) Config() Config {
	return e.cfg
}

// Decide recommends one action for the snapshot. equity may be nil, in which
// case the engine assumes a coin flip. Decide never panics.
func (e *Engine) Decide(s Snapshot, equity EquityFunc) Decision {
	if !s.HeroTurn {
		return waitDecision("not hero's turn")
	}
	if s.Acting == nil {
		return waitDecision("no acting context")
	}

	sp := e.newSpot(s, equity)

	var d Decision
	if s.Street() == PreFlop {
		d = e.preflop(sp)
	} else {
		d = e.postflop(sp)
	}

	e.logger.Debug().
		Str("street", s.Street().String()).
		Float64("equity", sp.equity).
		Float64("pot_odds", sp.potOdds).
		Float64("spr", sp.stackToPot).
		Str("legal", sp.acting.Capabilities.String()).
		Str("action", d.Action.String()).
		Float64("amount", d.Amount).
		Str("name", d.Name).
		Msg("decision")

	return d
}

// spot carries everything the rule trees read for one decision.
type spot struct {
	acting     ActingContext
	legal      legality
	equity     float64
	label      string
	pot        float64
	stack      float64
	sizeCap    float64 // largest bet or raise: stack, tightened by MaxBet
	potOdds    float64
	stackToPot float64 // not consulted by either tree yet
	logger     zerolog.Logger
}

type legality struct {
	check, call, bet, raise, fold, allIn bool
}

func legalityOf(c Capabilities) legality {
	return legality{
		check: c.Allows(ActionCheck),
		call:  c.Allows(ActionCall),
		bet:   c.Allows(ActionBet),
		raise: c.Allows(ActionRaise),
		fold:  c.Allows(ActionFold),
		allIn: c.Allows(ActionAllIn),
	}
}

func (e *Engine) newSpot(s Snapshot, equity EquityFunc) *spot {
	ac := *s.Acting
	eq, label := e.acquireEquity(s, equity)

	pot := s.TotalPot
	if !(pot >= 1) {
		pot = 1
	}
	potOdds := 0.0
	if ac.CallAmount > 0 {
		potOdds = ac.CallAmount / (pot + ac.CallAmount)
	}
	stack := ac.Stack
	if !(stack > 0) {
		stack = 0
	}
	sizeCap := stack
	if ac.MaxBet > 0 && ac.MaxBet < stack {
		sizeCap = ac.MaxBet
	}

	return &spot{
		acting:     ac,
		legal:      legalityOf(ac.Capabilities),
		equity:     eq,
		label:      label,
		pot:        pot,
		stack:      stack,
		sizeCap:    sizeCap,
		potOdds:    potOdds,
		stackToPot: stack / math.Max(1, pot),
		logger:     e.logger,
	}
}

// acquireEquity asks the collaborators for equity and a hand label. Any
// failure yields neutral equity and no label.
func (e *Engine) acquireEquity(s Snapshot, fn EquityFunc) (float64, string) {
	if len(s.HoleCards) < 2 {
		return neutralEquity, ""
	}

	equity := neutralEquity
	if fn != nil {
		eq, err := callEquity(fn, s.HoleCards, s.BoardCards, s.Opponents())
		if err != nil {
			e.logger.Debug().Err(err).Strs("hole", s.HoleCards).Strs("board", s.BoardCards).Msg("equity unavailable, assuming coin flip")
			return neutralEquity, ""
		}
		equity = eq
	}

	if len(s.BoardCards) < 3 || e.evaluator == nil {
		return equity, ""
	}
	cards := make([]string, 0, len(s.HoleCards)+len(s.BoardCards))
	cards = append(cards, s.HoleCards...)
	cards = append(cards, s.BoardCards...)
	label, err := callEvaluator(e.evaluator, cards)
	if err != nil {
		e.logger.Debug().Err(err).Strs("cards", cards).Msg("hand label unavailable")
		return equity, ""
	}
	return equity, label
}

// act assembles a Decision, rounding the amount and keeping it inside the stack.
func (sp *spot) act(kind ActionKind, amount float64, name, reason string) Decision {
	amount = roundChips(amount)
	if amount > sp.stack {
		amount = truncateChips(sp.stack)
	}
	if amount < 0 {
		amount = 0
	}
	return Decision{
		Action:     kind,
		Amount:     amount,
		Name:       name,
		Reason:     reason,
		Equity:     sp.equity,
		Confidence: Confidence(sp.equity),
		HandLabel:  sp.label,
	}
}

func (sp *spot) check(reason string) Decision {
	return sp.act(ActionCheck, 0, "CHECK", reason)
}

func (sp *spot) fold(reason string) Decision {
	return sp.act(ActionFold, 0, "FOLD", reason)
}

func (sp *spot) call(reason string) Decision {
	return sp.act(ActionCall, math.Min(sp.acting.CallAmount, sp.stack), "CALL", reason)
}

// fallback ends a tree when nothing better fired: fold, else call, else check.
// Check is returned even when it is not legal so the caller always gets a
// well-formed decision.
func (sp *spot) fallback(foldReason, defaultReason string) Decision {
	switch {
	case sp.legal.fold:
		return sp.fold(foldReason)
	case sp.legal.call:
		return sp.call("forced call")
	}
	if !sp.legal.check {
		sp.logger.Warn().
			Str("legal", sp.acting.Capabilities.String()).
			Msg("no check, call or fold offered, defaulting to check")
	}
	return sp.check(defaultReason)
}
