package bot

import (
	"rook/internal/domain"
)

// RandomBot plays a uniformly random legal card.
type RandomBot struct {
	src domain.Source
}

func (b *RandomBot) ChooseCard(view TurnView) (domain.Card, error) {
	return domain.Choose(b.src, view.Legal)
}
