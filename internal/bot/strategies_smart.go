package bot

import (
	"rook/internal/domain"
)

// SmartBot runs the selection pipeline: lead high, take point tricks cheaply,
// otherwise shed the lowest card.
type SmartBot struct {
	Rules []SelectionRule
}

// NewSmartBot returns a SmartBot with the default rule order.
func NewSmartBot() *SmartBot {
	return &SmartBot{Rules: []SelectionRule{
		&LeadHighRule{},
		&WinCheaplyRule{},
		&ShedLowRule{},
	}}
}

func (b *SmartBot) ChooseCard(view TurnView) (domain.Card, error) {
	ctx := &SelectionContext{View: view, Candidates: view.Legal}
	for _, rule := range b.Rules {
		rule.Apply(ctx)
		if ctx.Decided {
			return ctx.Selected, nil
		}
	}
	return view.Legal[0], nil
}
