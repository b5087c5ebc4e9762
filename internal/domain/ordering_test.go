package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSuitDesc(t *testing.T) {
	tests := []struct {
		name string
		mode BirdMode
		bird bool
		want []string
	}{
		{name: "suited only", mode: BirdMid, bird: false, want: []string{"g1", "g14", "g13", "g12", "g11", "g10", "g9", "g8", "g7", "g6", "g5"}},
		{name: "mid", mode: BirdMid, bird: true, want: []string{"g1", "g14", "g13", "g12", "g11", "bird", "g10", "g9", "g8", "g7", "g6", "g5"}},
		{name: "high", mode: BirdHigh, bird: true, want: []string{"bird", "g1", "g14", "g13", "g12", "g11", "g10", "g9", "g8", "g7", "g6", "g5"}},
		{name: "low", mode: BirdLow, bird: true, want: []string{"g1", "g14", "g13", "g12", "g11", "g10", "g9", "g8", "g7", "g6", "g5", "bird"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuitDesc(Green, tt.mode, tt.bird)
			if d := cmp.Diff(cards(t, tt.want...), got); d != "" {
				t.Fatalf("SuitDesc mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestSuitDescIsTotalOrder(t *testing.T) {
	for _, mode := range []BirdMode{BirdLow, BirdMid, BirdHigh} {
		for _, s := range Suits {
			for _, bird := range []bool{false, true} {
				got := SuitDesc(s, mode, bird)
				want := 11
				if bird {
					want = 12
				}
				if len(got) != want {
					t.Fatalf("%s/%s/%v: len = %d, want %d", mode, s, bird, len(got), want)
				}
				seen := map[Card]bool{}
				for _, c := range got {
					if seen[c] {
						t.Fatalf("%s/%s/%v: duplicate %v", mode, s, bird, c)
					}
					seen[c] = true
				}
				if d := cmp.Diff(got, SuitDesc(s, mode, bird)); d != "" {
					t.Fatalf("SuitDesc not deterministic:\n%s", d)
				}
			}
		}
	}
}

func TestOrderDesc(t *testing.T) {
	in := cards(t, "r5", "bird", "r1", "g14", "r10")
	got := OrderDesc(in, Red, BirdMid, true)
	if d := cmp.Diff(cards(t, "r1", "bird", "r10", "r5"), got); d != "" {
		t.Fatalf("OrderDesc mismatch (-want +got):\n%s", d)
	}
	got = OrderDesc(in, Red, BirdMid, false)
	if d := cmp.Diff(cards(t, "r1", "r10", "r5"), got); d != "" {
		t.Fatalf("OrderDesc without bird mismatch (-want +got):\n%s", d)
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		card string
		want int
	}{
		{"bird", 20},
		{"b1", 15},
		{"o14", 10},
		{"g10", 10},
		{"r5", 5},
		{"r13", 0},
		{"b6", 0},
	}
	for _, tt := range tests {
		if got := Points(card(t, tt.card)); got != tt.want {
			t.Errorf("Points(%s) = %d, want %d", tt.card, got, tt.want)
		}
	}

	if got := PointsOf(NewDeck()); got != 180 {
		t.Fatalf("deck points = %d, want 180", got)
	}
	for seed := uint64(1); seed <= 5; seed++ {
		if got := PointsOf(ShuffleDeck(NewDeck(), NewSource(seed))); got != 180 {
			t.Fatalf("seed %d: shuffled deck points = %d, want 180", seed, got)
		}
	}
}

func TestParseBirdMode(t *testing.T) {
	tests := []struct {
		in      string
		want    BirdMode
		wantErr bool
	}{
		{in: "10.5", want: BirdMid},
		{in: "mid", want: BirdMid},
		{in: "LOW", want: BirdLow},
		{in: "high", want: BirdHigh},
		{in: "wild", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseBirdMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBirdMode(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBirdMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestCardText(t *testing.T) {
	for _, c := range NewDeck() {
		back, err := ParseCard(c.String())
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", c.String(), err)
		}
		if back != c {
			t.Fatalf("ParseCard(%q) = %v, want %v", c.String(), back, c)
		}
	}

	b, err := json.Marshal(cards(t, "bird", "o14"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `["bird","o14"]` {
		t.Fatalf("json = %s", b)
	}

	for _, bad := range []string{"x5", "g4", "g15", "g", "r0"} {
		if _, err := ParseCard(bad); err == nil {
			t.Errorf("ParseCard(%q) expected error", bad)
		}
	}
}

func TestStrength(t *testing.T) {
	r := declared(t, BirdMid, Red)
	if Strength(card(t, "r5"), r) <= Strength(card(t, "g1"), r) {
		t.Fatalf("lowest trump should outrank an off-suit ace")
	}
	if Strength(Bird, r) <= Strength(card(t, "r10"), r) || Strength(Bird, r) >= Strength(card(t, "r11"), r) {
		t.Fatalf("bird should rank between r11 and r10 at 10.5")
	}
	if Strength(card(t, "g1"), r) <= Strength(card(t, "g14"), r) {
		t.Fatalf("g1 should outrank g14")
	}
}
