package bot

import (
	"fmt"

	"rook/internal/domain"
)

// Agent is a named seat driven by a strategy.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent's strategy for a card and checks it against the legal set.
func (a *Agent) Play(view TurnView) (domain.Card, error) {
	if len(view.Legal) == 0 {
		return domain.Card{}, fmt.Errorf("%w: %s has no legal card", domain.ErrInvariant, a.Name)
	}
	c, err := a.Strategy.ChooseCard(view)
	if err != nil {
		return domain.Card{}, fmt.Errorf("%s: %w", a.Name, err)
	}
	for _, l := range view.Legal {
		if l == c {
			return c, nil
		}
	}
	return domain.Card{}, fmt.Errorf("%w: %s chose %v, legal %v", ErrIllegalChoice, a.Name, c, view.Legal)
}
