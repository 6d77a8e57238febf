package advisor

import (
	"fmt"
	"strings"
)

// ActionKind is one entry of the fixed action vocabulary. The numeric value is
// stable and doubles as the bit index inside Capabilities.
type ActionKind uint8

const (
	// ActionNone is only used when there is nothing to decide
	ActionNone ActionKind = iota
	// ActionCheck passes without committing chips
	ActionCheck
	// ActionCall matches the outstanding bet
	ActionCall
	// ActionBet opens the betting on a street
	ActionBet
	// ActionFold gives up the hand
	ActionFold
	// ActionRaise increases an existing bet
	ActionRaise
	// ActionAllIn commits the remaining stack
	ActionAllIn
)

var actionNames = [...]string{
	ActionNone:  "NONE",
	ActionCheck: "CHECK",
	ActionCall:  "CALL",
	ActionBet:   "BET",
	ActionFold:  "FOLD",
	ActionRaise: "RAISE",
	ActionAllIn: "ALL_IN",
}

// String returns the upper-case name of the action
func (a ActionKind) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(a))
}

// Valid reports whether a is part of the vocabulary.
func (a ActionKind) Valid() bool {
	return int(a) < len(actionNames)
}

// ParseActionKind converts a name such as "raise", "ALL_IN" or "allin" to an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ActionNone, nil
	case "check":
		return ActionCheck, nil
	case "call":
		return ActionCall, nil
	case "bet":
		return ActionBet, nil
	case "fold":
		return ActionFold, nil
	case "raise":
		return ActionRaise, nil
	case "all_in", "all-in", "allin":
		return ActionAllIn, nil
	default:
		return ActionNone, fmt.Errorf("unknown action %q", s)
	}
}

// Capabilities is the set of actions legal in the current turn, stored as a
// bitmask where bit k is set when ActionKind k is allowed.
type Capabilities uint32

// NewCapabilities builds a capability set from the given kinds.
func NewCapabilities(kinds ...ActionKind) Capabilities {
	var c Capabilities
	for _, k := range kinds {
		c = c.With(k)
	}
	return c
}

// Allows reports whether bit kind is set in mask.
func Allows(mask Capabilities, kind ActionKind) bool {
	return (mask>>kind)&1 == 1
}

// Allows reports whether kind is legal.
func (c Capabilities) Allows(kind ActionKind) bool {
	return Allows(c, kind)
}

// With returns a copy of c with kind added.
func (c Capabilities) With(kind ActionKind) Capabilities {
	return c | 1<<kind
}

// Kinds lists the legal actions in code order.
func (c Capabilities) Kinds() []ActionKind {
	var kinds []ActionKind
	for k := ActionNone; k.Valid(); k++ {
		if c.Allows(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (c Capabilities) String() string {
	kinds := c.Kinds()
	if len(kinds) == 0 {
		return "none"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = strings.ToLower(k.String())
	}
	return strings.Join(names, ",")
}

// ParseCapabilities parses a comma separated list like "check,bet,fold".
func ParseCapabilities(s string) (Capabilities, error) {
	var c Capabilities
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kind, err := ParseActionKind(part)
		if err != nil {
			return 0, err
		}
		c = c.With(kind)
	}
	return c, nil
}
