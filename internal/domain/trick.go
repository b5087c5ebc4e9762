package domain

import "fmt"

// Play is one card laid into a trick.
type Play struct {
	Seat Seat
	Card Card
}

// Trick collects one play per seat in rotation from the leader.
type Trick struct {
	Leader Seat
	Plays  []Play
}

// NewTrick starts an empty trick led by leader.
func NewTrick(leader Seat) *Trick {
	return &Trick{Leader: leader, Plays: make([]Play, 0, NumSeats)}
}

// Len returns the number of plays so far.
func (t *Trick) Len() int { return len(t.Plays) }

// Complete reports whether every seat has played.
func (t *Trick) Complete() bool { return len(t.Plays) == NumSeats }

// NextSeat is the seat due to play next.
func (t *Trick) NextSeat() Seat {
	return (t.Leader + Seat(len(t.Plays))) % NumSeats
}

// Add appends seat's card. Seats must play in rotation and a card can only
// appear once.
func (t *Trick) Add(seat Seat, c Card) error {
	if t.Complete() {
		return fmt.Errorf("%w: trick already complete", ErrInvariant)
	}
	if seat != t.NextSeat() {
		return fmt.Errorf("%w: seat %d played out of turn, want seat %d", ErrInvariant, seat, t.NextSeat())
	}
	if _, dup := t.PlayedBy(c); dup {
		return fmt.Errorf("%w: card %v already in trick", ErrInvariant, c)
	}
	t.Plays = append(t.Plays, Play{Seat: seat, Card: c})
	return nil
}

// Cards returns the played cards in play order.
func (t *Trick) Cards() []Card {
	out := make([]Card, len(t.Plays))
	for i, p := range t.Plays {
		out[i] = p.Card
	}
	return out
}

// PlayedBy returns the seat that played c.
func (t *Trick) PlayedBy(c Card) (Seat, bool) {
	for _, p := range t.Plays {
		if p.Card == c {
			return p.Seat, true
		}
	}
	return 0, false
}

// Points is the trick's scoring value.
func (t *Trick) Points() int { return PointsOf(t.Cards()) }

// Clone returns an independent copy.
func (t *Trick) Clone() *Trick {
	return &Trick{Leader: t.Leader, Plays: append(make([]Play, 0, NumSeats), t.Plays...)}
}

// SuitLed is the effective suit of the first card; a led bird means trump.
func (t *Trick) SuitLed(round *Round) (Suit, error) {
	if len(t.Plays) == 0 {
		return SuitNone, fmt.Errorf("%w: no suit led in an empty trick", ErrInvariant)
	}
	first := t.Plays[0].Card
	if !first.IsBird() {
		return first.Suit, nil
	}
	trump, ok := round.Trump()
	if !ok {
		return SuitNone, fmt.Errorf("%w: bird led before trump was declared", ErrInvariant)
	}
	return trump, nil
}

// Winner returns the seat taking a complete trick: the highest trump if any
// trump was played, otherwise the highest card of the suit led.
func Winner(t *Trick, round *Round) (Seat, error) {
	if !t.Complete() {
		return 0, fmt.Errorf("%w: resolving a trick with %d of %d plays", ErrInvariant, t.Len(), NumSeats)
	}
	return Leading(t, round)
}

// Leading returns the seat currently winning a trick in progress.
func Leading(t *Trick, round *Round) (Seat, error) {
	if t.Len() == 0 {
		return 0, fmt.Errorf("%w: no plays in trick", ErrInvariant)
	}
	trump, ok := round.Trump()
	if !ok {
		return 0, fmt.Errorf("%w: trick played before trump was declared", ErrInvariant)
	}
	mode := round.Rules.BirdMode

	bySuit := SuitSorted(t.Cards(), round)
	var ranked []Card
	if trumps := bySuit[trump]; len(trumps) > 0 {
		ranked = OrderDesc(trumps, trump, mode, true)
	} else {
		led, err := t.SuitLed(round)
		if err != nil {
			return 0, err
		}
		ranked = OrderDesc(bySuit[led], led, mode, false)
	}
	if len(ranked) == 0 {
		return 0, fmt.Errorf("%w: no card of the suit led in trick", ErrInvariant)
	}

	seat, _ := t.PlayedBy(ranked[0])
	return seat, nil
}
