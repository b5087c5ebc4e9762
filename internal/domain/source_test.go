package domain

import "testing"

// scriptedSource never reorders a shuffle and answers Intn from picks in turn.
type scriptedSource struct {
	picks []int
	calls int
}

func (s *scriptedSource) Intn(n int) int {
	p := 0
	if s.calls < len(s.picks) {
		p = s.picks[s.calls] % n
	}
	s.calls++
	return p
}

func (s *scriptedSource) Shuffle(int, func(i, j int)) {}

func cards(t testing.TB, names ...string) []Card {
	t.Helper()
	out := make([]Card, 0, len(names))
	for _, n := range names {
		c, err := ParseCard(n)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", n, err)
		}
		out = append(out, c)
	}
	return out
}

func card(t testing.TB, name string) Card {
	t.Helper()
	return cards(t, name)[0]
}

func declared(t testing.TB, mode BirdMode, trump Suit) *Round {
	t.Helper()
	r := NewRound(Rules{BirdMode: mode, PartnerMode: PartnerNone})
	if err := r.Declare(trump, nil); err != nil {
		t.Fatalf("Declare: %v", err)
	}
	return r
}
