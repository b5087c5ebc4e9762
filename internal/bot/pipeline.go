package bot

import (
	"sort"

	"rook/internal/domain"
)

// SelectionContext holds the state for the card selection pipeline.
type SelectionContext struct {
	View       TurnView
	Candidates []domain.Card
	Selected   domain.Card
	Decided    bool
}

func (ctx *SelectionContext) choose(c domain.Card) {
	ctx.Selected = c
	ctx.Decided = true
}

// SelectionRule represents a logic unit that can settle which card is played.
// A rule that cannot decide leaves the context untouched.
type SelectionRule interface {
	Name() string
	Apply(ctx *SelectionContext)
}

// LeadHighRule opens a trick with the strongest card held.
type LeadHighRule struct{}

func (r *LeadHighRule) Name() string { return "LeadHigh" }

func (r *LeadHighRule) Apply(ctx *SelectionContext) {
	if !ctx.View.Leading() {
		return
	}
	ranked := byStrength(ctx.Candidates, ctx.View.Round)
	ctx.choose(ranked[len(ranked)-1])
}

// WinCheaplyRule takes the trick with the weakest card that would lead it,
// unless the trick is already led by the bidder's side as far as this seat knows.
type WinCheaplyRule struct{}

func (r *WinCheaplyRule) Name() string { return "WinCheaply" }

func (r *WinCheaplyRule) Apply(ctx *SelectionContext) {
	view := ctx.View
	if view.Leading() {
		return
	}
	if leader, err := domain.Leading(view.Trick, view.Round); err == nil && leader == view.Bidder && view.Seat != view.Bidder && holdsPartnerCard(view) {
		return
	}
	for _, c := range byStrength(ctx.Candidates, view.Round) {
		probe := view.Trick.Clone()
		if err := probe.Add(view.Seat, c); err != nil {
			continue
		}
		if seat, err := domain.Leading(probe, view.Round); err == nil && seat == view.Seat {
			ctx.choose(c)
			return
		}
	}
}

// ShedLowRule gives away the card with the fewest points, weakest first.
type ShedLowRule struct{}

func (r *ShedLowRule) Name() string { return "ShedLow" }

func (r *ShedLowRule) Apply(ctx *SelectionContext) {
	ranked := byStrength(ctx.Candidates, ctx.View.Round)
	sort.SliceStable(ranked, func(i, j int) bool {
		return domain.Points(ranked[i]) < domain.Points(ranked[j])
	})
	ctx.choose(ranked[0])
}

// byStrength returns a copy of cards, weakest first.
func byStrength(cards []domain.Card, round *domain.Round) []domain.Card {
	out := append([]domain.Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		return domain.Strength(out[i], round) < domain.Strength(out[j], round)
	})
	return out
}

// holdsPartnerCard reports whether the seat secretly partners the bidder.
func holdsPartnerCard(view TurnView) bool {
	partner, ok := view.Round.Partner()
	if !ok {
		return false
	}
	for _, c := range view.Hand {
		if c == partner {
			return true
		}
	}
	return false
}
