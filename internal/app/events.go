package app

import "rook/internal/domain"

// EventKind identifies emitted round events for dispatch.
type EventKind string

const (
	EventRoundStarted   EventKind = "round_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventBidsResolved   EventKind = "bids_resolved"
	EventKittyExchanged EventKind = "kitty_exchanged"
	EventCardPlayed     EventKind = "card_played"
	EventTrickWon       EventKind = "trick_won"
	EventRoundEnded     EventKind = "round_ended"
)

// Event is a round event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.Seat // empty means broadcast
}

type RoundStartedPayload struct {
	RoundID string
	Seats   [domain.NumSeats]string
	Rules   domain.Rules
}

type HandDealtPayload struct {
	Seat domain.Seat
	Hand []domain.Card
}

type BidsResolvedPayload struct {
	Bids   [domain.NumSeats]int
	Bidder domain.Seat
	Bid    int
}

// KittyExchangedPayload is public: the discards stay with the bidder.
type KittyExchangedPayload struct {
	Bidder     domain.Seat
	Trump      domain.Suit
	Partner    *domain.Card
	PartnerVia domain.PartnerTier
}

type CardPlayedPayload struct {
	Trick    int
	Seat     domain.Seat
	Card     domain.Card
	NextSeat domain.Seat
}

type TrickWonPayload struct {
	Trick  int
	Winner domain.Seat
	Points int
}

type RoundEndedPayload struct {
	Outcome domain.Outcome
}
