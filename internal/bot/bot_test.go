package bot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rook/internal/domain"
)

// fixedSource always picks index i (mod n) and never reorders.
type fixedSource struct{ i int }

func (s fixedSource) Intn(n int) int                     { return s.i % n }
func (s fixedSource) Shuffle(n int, swap func(i, j int)) {}

func parseCards(t *testing.T, names ...string) []domain.Card {
	t.Helper()
	out := make([]domain.Card, 0, len(names))
	for _, n := range names {
		c, err := domain.ParseCard(n)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func redTrump(t *testing.T) *domain.Round {
	t.Helper()
	r := domain.NewRound(domain.Rules{BirdMode: domain.BirdMid, PartnerMode: domain.PartnerNone})
	require.NoError(t, r.Declare(domain.Red, nil))
	return r
}

func trickWith(t *testing.T, leader domain.Seat, names ...string) *domain.Trick {
	t.Helper()
	tr := domain.NewTrick(leader)
	seat := leader
	for _, c := range parseCards(t, names...) {
		require.NoError(t, tr.Add(seat, c))
		seat = seat.Next()
	}
	return tr
}

func TestGoodBot_PlaysLowest(t *testing.T) {
	round := redTrump(t)
	legal := parseCards(t, "r5", "g1", "b6")
	view := TurnView{Seat: 0, Hand: legal, Legal: legal, Trick: domain.NewTrick(0), Round: round}

	got, err := (&GoodBot{}).ChooseCard(view)
	require.NoError(t, err)
	assert.Equal(t, "b6", got.String())
}

func TestSmartBot(t *testing.T) {
	tests := []struct {
		name  string
		trick []string
		legal []string
		want  string
	}{
		{name: "leads strongest", legal: []string{"g1", "b6", "r5"}, want: "r5"},
		{name: "wins with cheapest winner", trick: []string{"g13"}, legal: []string{"g1", "g5", "g14"}, want: "g14"},
		{name: "trumps a void suit", trick: []string{"g13"}, legal: []string{"b1", "r6", "r1"}, want: "r6"},
		{name: "sheds non-counter when beaten", trick: []string{"g1"}, legal: []string{"g5", "g6"}, want: "g6"},
		{name: "bird wins over off suit", trick: []string{"b1", "b14"}, legal: []string{"bird", "g6"}, want: "bird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := redTrump(t)
			tr := trickWith(t, 0, tt.trick...)
			legal := parseCards(t, tt.legal...)
			view := TurnView{Seat: tr.NextSeat(), Bidder: 3, Hand: legal, Legal: legal, Trick: tr, Round: round}

			got, err := NewSmartBot().ChooseCard(view)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSmartBot_PartnerLetsBidderWin(t *testing.T) {
	round := domain.NewRound(domain.DefaultRules())
	partner := domain.Card{Suit: domain.Green, Rank: domain.RankAce}
	require.NoError(t, round.Declare(domain.Red, &partner))

	tr := trickWith(t, 0, "g13")
	legal := parseCards(t, "g1", "g14")
	view := TurnView{Seat: 1, Bidder: 0, Hand: legal, Legal: legal, Trick: tr, Round: round}

	got, err := NewSmartBot().ChooseCard(view)
	require.NoError(t, err)
	assert.Equal(t, "g14", got.String(), "partner should feed points instead of overtaking")
}

func TestRandomBot_UsesSource(t *testing.T) {
	legal := parseCards(t, "g5", "g6", "g7")
	b, err := NewBrain(BotLevelRandom, fixedSource{i: 4})
	require.NoError(t, err)

	got, err := b.ChooseCard(TurnView{Legal: legal, Round: redTrump(t)})
	require.NoError(t, err)
	assert.Equal(t, "g6", got.String())
}

type stubBrain struct{ card domain.Card }

func (b stubBrain) ChooseCard(TurnView) (domain.Card, error) { return b.card, nil }

func TestAgent_RejectsIllegalChoice(t *testing.T) {
	legal := parseCards(t, "g5")
	a := &Agent{Name: "alf", Strategy: stubBrain{card: domain.Bird}}

	_, err := a.Play(TurnView{Legal: legal})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalChoice))

	a.Strategy = stubBrain{card: legal[0]}
	got, err := a.Play(TurnView{Legal: legal})
	require.NoError(t, err)
	assert.Equal(t, legal[0], got)

	_, err = a.Play(TurnView{})
	assert.ErrorIs(t, err, domain.ErrInvariant)
}

func TestParseBotLevel(t *testing.T) {
	for in, want := range map[string]BotLevel{"": BotLevelRandom, "random": BotLevelRandom, "Good": BotLevelGood, " smart ": BotLevelSmart} {
		got, err := ParseBotLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in != "" {
			assert.Equal(t, want.String(), got.String())
		}
	}
	_, err := ParseBotLevel("god")
	assert.Error(t, err)
}

func TestNewBrain(t *testing.T) {
	_, err := NewBrain(BotLevelRandom, nil)
	assert.Error(t, err)

	b, err := NewBrain(BotLevelGood, nil)
	require.NoError(t, err)
	assert.IsType(t, &GoodBot{}, b)

	b, err = NewBrain(BotLevelSmart, nil)
	require.NoError(t, err)
	assert.IsType(t, &SmartBot{}, b)

	_, err = NewBrain(BotLevel(9), nil)
	assert.Error(t, err)
}

func TestNewAgents(t *testing.T) {
	agents, err := NewAgents([]string{"", "bo"}, []BotLevel{BotLevelGood}, fixedSource{})
	require.NoError(t, err)

	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"alf", "bo", "cate", "duke"}, names)
	assert.IsType(t, &GoodBot{}, agents[0].Strategy)
	assert.IsType(t, &RandomBot{}, agents[3].Strategy)
}
