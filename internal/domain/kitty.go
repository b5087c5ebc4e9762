package domain

import (
	"fmt"
	"sort"
)

// PartnerTier records which rule named the partner card.
type PartnerTier int

const (
	// PartnerUndeclared means no partner was named (PartnerNone rules).
	PartnerUndeclared PartnerTier = iota
	// PartnerByTrumpGap names the highest trump missing from the bidder's top trumps.
	PartnerByTrumpGap
	// PartnerByOffSuitGap names the highest card missing from an off suit's top three.
	PartnerByOffSuitGap
	// PartnerFallback picks at random among the bidder's trumps and retained cards.
	PartnerFallback
)

func (t PartnerTier) String() string {
	switch t {
	case PartnerByTrumpGap:
		return "trump_gap"
	case PartnerByOffSuitGap:
		return "off_suit_gap"
	case PartnerFallback:
		return "fallback"
	}
	return "undeclared"
}

// Exchange is the outcome of the bidder taking the kitty.
type Exchange struct {
	Trump       Suit
	Partner     Card
	PartnerTier PartnerTier
	// TrumpCards is the kept trump holding, strongest first, bird included.
	TrumpCards []Card
	// Retained are the unbroken top runs of the off suits in the fifteen-card pool.
	Retained []Card
	Kept     []Card
	Discards []Card
}

// rankWeights value a card when choosing trump.
var rankWeights = map[int]float64{
	1:  4,
	14: 3.1,
	13: 3,
	12: 2.2,
	11: 2,
	10: 1.8,
	9:  1.4,
	8:  1.3,
	7:  1.2,
	6:  1.1,
	5:  1.0,
}

func suitWeight(cards []Card) float64 {
	total := 0.0
	for _, c := range cards {
		total += rankWeights[c.Rank]
	}
	return total
}

// rankByWeight groups cards by suit, strongest holding first. Ties keep suit order.
func rankByWeight(cards []Card) ([]suitGroup, bool) {
	groups, bird := groupBySuit(cards)
	sort.SliceStable(groups, func(i, j int) bool {
		return suitWeight(groups[i].cards) > suitWeight(groups[j].cards)
	})
	return groups, bird
}

// topRun returns the leading cards of desc that match the suit's canonical
// order without a gap.
func topRun(desc []Card, suit Suit, mode BirdMode) []Card {
	canon := SuitDesc(suit, mode, false)
	var run []Card
	for i, c := range desc {
		if i >= len(canon) || c != canon[i] {
			break
		}
		run = append(run, c)
	}
	return run
}

// firstGap walks top against canon in lockstep and returns the first canonical
// card that top does not hold at that position.
func firstGap(top, canon []Card) (Card, bool) {
	for i, c := range top {
		if i >= len(canon) {
			break
		}
		if c != canon[i] {
			return canon[i], true
		}
	}
	return Card{}, false
}

// ExchangeKitty merges the kitty into the bidder's hand, picks trump, keeps
// the best ten cards, discards five and declares trump and partner on round.
func ExchangeKitty(h *Hand, kitty []Card, round *Round, src Source) (Exchange, error) {
	if len(h.Cards) != HandSize {
		return Exchange{}, fmt.Errorf("%w: bidder holds %d cards, want %d", ErrInvariant, len(h.Cards), HandSize)
	}
	if len(kitty) != KittySize {
		return Exchange{}, fmt.Errorf("%w: kitty holds %d cards, want %d", ErrInvariant, len(kitty), KittySize)
	}
	if len(h.Discards) > 0 {
		return Exchange{}, fmt.Errorf("%w: kitty already exchanged", ErrInvariant)
	}
	if round.Declared() {
		return Exchange{}, fmt.Errorf("%w: trump declared before the kitty exchange", ErrConfig)
	}
	mode := round.Rules.BirdMode

	pool := make([]Card, 0, HandSize+KittySize)
	pool = append(pool, h.Cards...)
	pool = append(pool, kitty...)
	seen := make(map[Card]bool, len(pool))
	for _, c := range pool {
		if seen[c] {
			return Exchange{}, fmt.Errorf("%w: duplicate card %v in hand and kitty", ErrInvariant, c)
		}
		seen[c] = true
	}

	groups, bird := rankByWeight(pool)
	trump := groups[0].suit
	trumpCards := withBird(groups[0].cards, bird)
	trumpCards = OrderDesc(trumpCards, trump, mode, true)

	var offSuits [][]Card
	for _, g := range groups[1:] {
		if len(g.cards) > 0 {
			offSuits = append(offSuits, OrderDesc(g.cards, g.suit, mode, false))
		}
	}

	var retained []Card
	for _, desc := range offSuits {
		retained = append(retained, topRun(desc, desc[0].Suit, mode)...)
	}

	priority := make([]Card, 0, len(pool))
	priority = append(priority, trumpCards...)
	priority = append(priority, retained...)
	included := make(map[Card]bool, len(pool))
	for _, c := range priority {
		included[c] = true
	}
	for _, desc := range offSuits {
		for _, c := range desc {
			if !included[c] {
				priority = append(priority, c)
				included[c] = true
			}
		}
	}
	if len(priority) != len(pool) {
		return Exchange{}, fmt.Errorf("%w: priority order lost cards (%d of %d)", ErrInvariant, len(priority), len(pool))
	}

	ex := Exchange{
		Trump:    trump,
		Retained: retained,
		Kept:     append([]Card(nil), priority[:HandSize]...),
		Discards: append([]Card(nil), priority[HandSize:]...),
	}
	h.Cards = append([]Card(nil), ex.Kept...)
	h.Discards = append([]Card(nil), ex.Discards...)

	// Recompute from the kept ten; trump stays where it was chosen.
	finalTrump, finalOff := splitKept(ex.Kept, trump, mode)
	ex.TrumpCards = finalTrump

	if round.Rules.PartnerMode == PartnerNone {
		if err := round.Declare(trump, nil); err != nil {
			return Exchange{}, err
		}
		return ex, nil
	}

	partner, tier, ok := partnerByGap(finalTrump, finalOff, trump, mode)
	if !ok {
		// Pretty well covered: any of our own strong cards will do.
		candidates := append(append([]Card(nil), finalTrump...), retained...)
		pick, err := Choose(src, candidates)
		if err != nil {
			return Exchange{}, err
		}
		partner, tier = pick, PartnerFallback
	}
	ex.Partner = partner
	ex.PartnerTier = tier

	if err := round.Declare(trump, &partner); err != nil {
		return Exchange{}, err
	}
	return ex, nil
}

func withBird(cards []Card, bird bool) []Card {
	out := append([]Card(nil), cards...)
	if bird {
		out = append(out, Bird)
	}
	return out
}

// splitKept returns the kept trump list and the kept off suits, each strongest
// first, the off suits ordered by holding weight.
func splitKept(kept []Card, trump Suit, mode BirdMode) ([]Card, [][]Card) {
	groups, bird := rankByWeight(kept)
	var trumpCards []Card
	var off [][]Card
	for _, g := range groups {
		if g.suit == trump {
			trumpCards = OrderDesc(withBird(g.cards, bird), trump, mode, true)
			continue
		}
		if len(g.cards) > 0 {
			off = append(off, OrderDesc(g.cards, g.suit, mode, false))
		}
	}
	return trumpCards, off
}

const (
	partnerTopTrump     = 3
	partnerTopTrumpLong = 5
	partnerLongTrump    = 6
	partnerTopOffSuit   = 3
)

// partnerByGap applies the trump-gap rule, then the off-suit-gap rule.
func partnerByGap(trumpCards []Card, offSuits [][]Card, trump Suit, mode BirdMode) (Card, PartnerTier, bool) {
	top := partnerTopTrump
	if len(trumpCards) >= partnerLongTrump {
		top = partnerTopTrumpLong
	}
	if gap, ok := firstGap(trumpCards[:min(top, len(trumpCards))], SuitDesc(trump, mode, true)); ok {
		return gap, PartnerByTrumpGap, true
	}

	for _, desc := range offSuits {
		top := desc[:min(partnerTopOffSuit, len(desc))]
		if gap, ok := firstGap(top, SuitDesc(desc[0].Suit, mode, false)); ok {
			return gap, PartnerByOffSuitGap, true
		}
	}
	return Card{}, PartnerUndeclared, false
}
