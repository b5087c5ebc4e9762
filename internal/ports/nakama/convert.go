package nakama

import (
	"rook/internal/app"
	"rook/internal/domain"
)

// TrickSummary is one played trick as sent to clients.
type TrickSummary struct {
	Leader domain.Seat   `json:"leader"`
	Cards  []domain.Card `json:"cards"`
	Winner domain.Seat   `json:"winner"`
	Points int           `json:"points"`
}

// RoundSummary is the JSON result of a simulated round.
type RoundSummary struct {
	RoundID         string                  `json:"round_id"`
	Seats           [domain.NumSeats]string `json:"seats"`
	Bids            [domain.NumSeats]int    `json:"bids"`
	Bidder          domain.Seat             `json:"bidder"`
	Bid             int                     `json:"bid"`
	Trump           domain.Suit             `json:"trump"`
	Partner         *domain.Card            `json:"partner,omitempty"`
	PartnerVia      string                  `json:"partner_via"`
	Discards        []domain.Card           `json:"discards"`
	Tricks          []TrickSummary          `json:"tricks"`
	Scores          [domain.NumSeats]int    `json:"scores"`
	PartnerSeat     domain.Seat             `json:"partner_seat"`
	Solo            bool                    `json:"solo"`
	LeaderScore     int                     `json:"leader_score"`
	OppositionScore int                     `json:"opposition_score"`
	Made            bool                    `json:"made"`
}

func summarizeRound(st *app.RoundState) RoundSummary {
	out := RoundSummary{
		RoundID:  st.ID,
		Seats:    st.Seats,
		Bids:     st.Bids,
		Bidder:   st.Bidder,
		Bid:      st.Bid,
		Discards: st.Hands[st.Bidder].Discards,
		Tricks:   make([]TrickSummary, 0, len(st.Tricks)),
	}
	if st.Exchange != nil {
		out.Trump = st.Exchange.Trump
		out.PartnerVia = st.Exchange.PartnerTier.String()
	}
	if partner, ok := st.Round.Partner(); ok {
		out.Partner = &partner
	}
	if o := st.Outcome; o != nil {
		out.Scores = o.Scores
		out.PartnerSeat = o.Partner
		out.Solo = o.Solo
		out.LeaderScore = o.LeaderScore
		out.OppositionScore = o.OppositionScore
		out.Made = o.Made
		for i, t := range st.Tricks {
			out.Tricks = append(out.Tricks, TrickSummary{
				Leader: t.Leader,
				Cards:  t.Cards(),
				Winner: o.TrickWinners[i],
				Points: t.Points(),
			})
		}
	}
	return out
}
