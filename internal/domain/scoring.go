package domain

import "fmt"

// Outcome is the scored result of a finished round.
type Outcome struct {
	Bidder Seat
	Bid    int
	// Partner equals Bidder when the bidder played alone.
	Partner Seat
	Solo    bool

	Scores          [NumSeats]int
	TrickWinners    []Seat
	LastTrickWinner Seat
	DiscardBonus    int

	LeaderScore     int
	Opposition      []Seat
	OppositionScore int
	// Made is true when the bidding side scored strictly more than the bid.
	Made bool
}

// ResolvePartner finds the seat that played the declared partner card. The
// bidder is its own partner when no card was declared, when the bidder played
// the card, or when the card sits in the bidder's discards.
func ResolvePartner(tricks []*Trick, discards []Card, bidder Seat, round *Round) (Seat, error) {
	card, ok := round.Partner()
	if !ok {
		return bidder, nil
	}
	for _, t := range tricks {
		if seat, played := t.PlayedBy(card); played {
			return seat, nil
		}
	}
	for _, d := range discards {
		if d == card {
			return bidder, nil
		}
	}
	return 0, fmt.Errorf("%w: partner card %v was never played", ErrInvariant, card)
}

// Score tallies trick points, awards the discards to the winner of the last
// trick and decides whether the bidding side made its bid.
func Score(tricks []*Trick, discards []Card, bidder Seat, bid int, round *Round) (Outcome, error) {
	if len(tricks) != TricksPerRound {
		return Outcome{}, fmt.Errorf("%w: scoring %d tricks, want %d", ErrInvariant, len(tricks), TricksPerRound)
	}
	if !bidder.Valid() {
		return Outcome{}, fmt.Errorf("%w: invalid bidder seat %d", ErrInvariant, bidder)
	}

	out := Outcome{Bidder: bidder, Bid: bid, TrickWinners: make([]Seat, 0, len(tricks))}
	for i, t := range tricks {
		winner, err := Winner(t, round)
		if err != nil {
			return Outcome{}, fmt.Errorf("trick %d: %w", i+1, err)
		}
		out.Scores[winner] += t.Points()
		out.TrickWinners = append(out.TrickWinners, winner)
	}
	out.LastTrickWinner = out.TrickWinners[len(out.TrickWinners)-1]
	out.DiscardBonus = PointsOf(discards)
	out.Scores[out.LastTrickWinner] += out.DiscardBonus

	partner, err := ResolvePartner(tricks, discards, bidder, round)
	if err != nil {
		return Outcome{}, err
	}
	out.Partner = partner
	out.Solo = partner == bidder

	out.LeaderScore = out.Scores[bidder]
	if !out.Solo {
		out.LeaderScore += out.Scores[partner]
	}
	for seat := Seat(0); seat < NumSeats; seat++ {
		if seat == bidder || seat == partner {
			continue
		}
		out.Opposition = append(out.Opposition, seat)
		out.OppositionScore += out.Scores[seat]
	}
	out.Made = out.LeaderScore > bid
	return out, nil
}
