package domain

import "fmt"

const (
	// HandSize is the number of cards dealt to each seat.
	HandSize = 10
	// KittySize is the number of undealt cards set aside for the bidder.
	KittySize = 5
	// DeckSize is 11 ranks in 4 suits plus the bird.
	DeckSize = len(Ranks)*len(Suits) + 1
	// TricksPerRound is fixed by the hand size.
	TricksPerRound = HandSize
)

// NewDeck returns the 45-card deck in a fixed order: the bird, then each suit ascending.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	deck = append(deck, Bird)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, src Source) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	src.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Dealt is the result of a deal: one hand per seat plus the kitty.
type Dealt struct {
	Hands [NumSeats][]Card
	Kitty []Card
}

// Cards returns every dealt card, hands first in seat order, then the kitty.
func (d Dealt) Cards() []Card {
	out := make([]Card, 0, DeckSize)
	for _, h := range d.Hands {
		out = append(out, h...)
	}
	return append(out, d.Kitty...)
}

// Deal shuffles a fresh deck and splits it into four hands of ten and a
// kitty of five, in that order.
func Deal(src Source) (Dealt, error) {
	deck := ShuffleDeck(NewDeck(), src)

	var d Dealt
	idx := 0
	for seat := range d.Hands {
		d.Hands[seat] = append([]Card(nil), deck[idx:idx+HandSize]...)
		idx += HandSize
	}
	d.Kitty = append([]Card(nil), deck[idx:]...)

	if err := CheckPartition(d); err != nil {
		return Dealt{}, err
	}
	return d, nil
}

// CheckPartition verifies that the hands and kitty hold every deck card exactly once.
func CheckPartition(d Dealt) error {
	for seat, h := range d.Hands {
		if len(h) != HandSize {
			return fmt.Errorf("%w: seat %d holds %d cards, want %d", ErrInvariant, seat, len(h), HandSize)
		}
	}
	if len(d.Kitty) != KittySize {
		return fmt.Errorf("%w: kitty holds %d cards, want %d", ErrInvariant, len(d.Kitty), KittySize)
	}

	seen := make(map[Card]bool, DeckSize)
	for _, c := range d.Cards() {
		if !c.Valid() {
			return fmt.Errorf("%w: invalid card %v in deal", ErrInvariant, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %v in deal", ErrInvariant, c)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		return fmt.Errorf("%w: deal covers %d cards, want %d", ErrInvariant, len(seen), DeckSize)
	}
	return nil
}
