package domain

import (
	"fmt"
	"sort"
)

// Hand holds one seat's cards and, for the bidder, the kitty discards.
type Hand struct {
	Cards    []Card
	Discards []Card
}

// NewHand copies cards into a fresh hand.
func NewHand(cards []Card) *Hand {
	return &Hand{Cards: append([]Card(nil), cards...)}
}

// Len returns the number of cards still held.
func (h *Hand) Len() int { return len(h.Cards) }

// Has reports whether the hand holds c.
func (h *Hand) Has(c Card) bool {
	for _, held := range h.Cards {
		if held == c {
			return true
		}
	}
	return false
}

// Play removes c from the hand.
func (h *Hand) Play(c Card) error {
	if !h.Has(c) {
		return fmt.Errorf("%w: card %v not in hand", ErrInvariant, c)
	}
	h.Cards = RemoveCards(h.Cards, []Card{c})
	return nil
}

// MaxBid is the hand's bid valuation; see MaxBid.
func (h *Hand) MaxBid() int { return MaxBid(h.Cards) }

// RemoveCards removes the specified cards from a hand and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}

const (
	minBid      = 100
	maxBid      = 180
	bidStep     = 5
	deadAllowed = 3
)

// MaxBid estimates how high a hand can safely bid: 100, plus 5 per card of
// the longest suit (the bird counts as one more), minus 5 for every card past
// three held in the two shortest suits. The result is clamped to [100, 180].
func MaxBid(cards []Card) int {
	groups, bird := groupBySuit(cards)
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].cards) > len(groups[j].cards)
	})

	long := len(groups[0].cards)
	if bird {
		long++
	}
	dead := len(groups[2].cards) + len(groups[3].cards) - deadAllowed
	if dead < 0 {
		dead = 0
	}

	bid := minBid + long*bidStep - dead*bidStep
	return min(max(bid, minBid), maxBid)
}

type suitGroup struct {
	suit  Suit
	cards []Card
}

// groupBySuit splits cards into one group per suit in Suits order, empty
// groups included. The bird is reported separately.
func groupBySuit(cards []Card) ([]suitGroup, bool) {
	groups := make([]suitGroup, len(Suits))
	index := make(map[Suit]int, len(Suits))
	for i, s := range Suits {
		groups[i].suit = s
		index[s] = i
	}
	bird := false
	for _, c := range cards {
		if c.IsBird() {
			bird = true
			continue
		}
		i := index[c.Suit]
		groups[i].cards = append(groups[i].cards, c)
	}
	return groups, bird
}

// SuitSorted buckets cards by suit. The bird goes into the trump bucket, or
// under SuitNone while trump is undeclared. Empty suits are omitted.
func SuitSorted(cards []Card, round *Round) map[Suit][]Card {
	out := make(map[Suit][]Card, len(Suits))
	bird := false
	for _, c := range cards {
		if c.IsBird() {
			bird = true
			continue
		}
		out[c.Suit] = append(out[c.Suit], c)
	}
	if bird {
		key, _ := round.Trump()
		out[key] = append(out[key], Bird)
	}
	return out
}

// LegalCards returns the cards h may play into t. A leader may play anything;
// a follower must follow the suit led when able and may play anything otherwise.
func LegalCards(h *Hand, t *Trick, round *Round) ([]Card, error) {
	if h.Len() == 0 {
		return nil, fmt.Errorf("%w: asked to play from an empty hand", ErrInvariant)
	}
	if t.Complete() {
		return nil, fmt.Errorf("%w: trick already complete", ErrInvariant)
	}
	if t.Len() == 0 {
		return append([]Card(nil), h.Cards...), nil
	}

	led, err := t.SuitLed(round)
	if err != nil {
		return nil, err
	}
	if follow := SuitSorted(h.Cards, round)[led]; len(follow) > 0 {
		return append([]Card(nil), follow...), nil
	}
	return append([]Card(nil), h.Cards...), nil
}

// SortedView returns cards for display: the bird first, then each suit from
// longest to shortest, strongest card first.
func SortedView(cards []Card, mode BirdMode) []Card {
	groups, bird := groupBySuit(cards)
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].cards) > len(groups[j].cards)
	})

	out := make([]Card, 0, len(cards))
	if bird {
		out = append(out, Bird)
	}
	for _, g := range groups {
		out = append(out, OrderDesc(g.cards, g.suit, mode, false)...)
	}
	return out
}
