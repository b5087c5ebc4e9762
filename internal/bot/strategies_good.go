package bot

import (
	"sort"

	"rook/internal/domain"
)

// GoodBot always plays its lowest legal card, saving trump and high cards.
type GoodBot struct{}

func (b *GoodBot) ChooseCard(view TurnView) (domain.Card, error) {
	legal := append([]domain.Card(nil), view.Legal...)
	sort.SliceStable(legal, func(i, j int) bool {
		return domain.Strength(legal[i], view.Round) < domain.Strength(legal[j], view.Round)
	})
	return legal[0], nil
}
