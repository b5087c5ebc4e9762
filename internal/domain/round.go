package domain

import (
	"fmt"
	"strings"
)

// PartnerMode says whether the bidder must name a partner card.
type PartnerMode int

const (
	// PartnerPick requires a partner card at declaration.
	PartnerPick PartnerMode = iota
	// PartnerNone lets the bidder play alone.
	PartnerNone
)

func (m PartnerMode) String() string {
	if m == PartnerNone {
		return "none"
	}
	return "pick"
}

// ParsePartnerMode accepts "pick" or "none".
func ParsePartnerMode(v string) (PartnerMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pick", "":
		return PartnerPick, nil
	case "none":
		return PartnerNone, nil
	}
	return PartnerPick, fmt.Errorf("%w: unknown partner mode %q", ErrConfig, v)
}

// Rules are the per-round variant parameters.
type Rules struct {
	BirdMode    BirdMode
	PartnerMode PartnerMode
}

// DefaultRules ranks the bird at 10.5 and requires a partner card.
func DefaultRules() Rules {
	return Rules{BirdMode: BirdMid, PartnerMode: PartnerPick}
}

// Round is the context passed to every rule that depends on the declaration.
// Trump and partner are written once by Declare and read-only afterwards.
type Round struct {
	Rules Rules

	declared   bool
	trump      Suit
	partner    Card
	hasPartner bool
}

// NewRound starts an undeclared round.
func NewRound(rules Rules) *Round {
	return &Round{Rules: rules}
}

// Declare fixes the trump suit and partner card for the rest of the round.
// partner may be nil only when the rules do not require a partner.
func (r *Round) Declare(trump Suit, partner *Card) error {
	if r.declared {
		return fmt.Errorf("%w: trump already declared as %s", ErrConfig, r.trump)
	}
	if !trump.Valid() {
		return fmt.Errorf("%w: cannot declare %s as trump", ErrConfig, trump)
	}
	if partner == nil && r.Rules.PartnerMode == PartnerPick {
		return fmt.Errorf("%w: partner card required", ErrConfig)
	}
	if partner != nil {
		if !partner.Valid() {
			return fmt.Errorf("%w: invalid partner card %v", ErrConfig, *partner)
		}
		r.partner = *partner
		r.hasPartner = true
	}
	r.trump = trump
	r.declared = true
	return nil
}

// Declared reports whether Declare has succeeded.
func (r *Round) Declared() bool { return r.declared }

// Trump returns the declared trump suit.
func (r *Round) Trump() (Suit, bool) { return r.trump, r.declared }

// Partner returns the declared partner card, if any.
func (r *Round) Partner() (Card, bool) { return r.partner, r.hasPartner }
