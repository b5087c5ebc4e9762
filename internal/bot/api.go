package bot

import (
	"rook/internal/domain"
)

// TurnView is the read-only state a strategy sees when it is asked to play.
type TurnView struct {
	Seat   domain.Seat
	Bidder domain.Seat
	Hand   []domain.Card
	// Legal is never empty; the returned card must be one of these.
	Legal []domain.Card
	// Trick is a copy of the trick in progress.
	Trick *domain.Trick
	Round *domain.Round
}

// Leading reports whether the seat is opening the trick.
func (v TurnView) Leading() bool {
	return v.Trick == nil || v.Trick.Len() == 0
}

// Brain is the interface that all card-choice strategies must implement.
type Brain interface {
	ChooseCard(view TurnView) (domain.Card, error)
}
