package domain

import (
	"fmt"
	"strings"
)

// BirdMode selects where the bird ranks inside the trump suit.
type BirdMode int

const (
	// BirdMid ranks the bird between 11 and 10, as if it were a 10.5.
	BirdMid BirdMode = iota
	// BirdLow ranks the bird below the 5.
	BirdLow
	// BirdHigh ranks the bird above the 1.
	BirdHigh
)

var birdModeNames = map[BirdMode]string{
	BirdMid:  "10.5",
	BirdLow:  "low",
	BirdHigh: "high",
}

func (m BirdMode) String() string {
	if name, ok := birdModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("birdmode(%d)", int(m))
}

// ParseBirdMode accepts "low", "high", "10.5" or "mid".
func ParseBirdMode(v string) (BirdMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "10.5", "mid", "":
		return BirdMid, nil
	case "low":
		return BirdLow, nil
	case "high":
		return BirdHigh, nil
	}
	return BirdMid, fmt.Errorf("%w: unknown bird mode %q", ErrConfig, v)
}

func (m BirdMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *BirdMode) UnmarshalText(b []byte) error {
	v, err := ParseBirdMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ranksDesc is the canonical descending order of suited ranks.
var ranksDesc = [...]int{1, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5}

// birdSlots maps each mode to the ranksDesc index the bird is inserted before.
var birdSlots = map[BirdMode]int{
	BirdHigh: 0,
	BirdMid:  5,
	BirdLow:  len(ranksDesc),
}

// SuitDesc returns every card of suit in descending strength, optionally with
// the bird placed according to mode. Bid valuation, kitty exchange and trick
// resolution all order cards through this function.
func SuitDesc(suit Suit, mode BirdMode, includeBird bool) []Card {
	slot, ok := birdSlots[mode]
	if !ok {
		slot = birdSlots[BirdMid]
	}
	out := make([]Card, 0, len(ranksDesc)+1)
	for i, r := range ranksDesc {
		if includeBird && i == slot {
			out = append(out, Bird)
		}
		out = append(out, Card{Suit: suit, Rank: r})
	}
	if includeBird && slot == len(ranksDesc) {
		out = append(out, Bird)
	}
	return out
}

// OrderDesc returns the members of cards that appear in SuitDesc(suit, mode,
// includeBird), strongest first. Cards of other suits are dropped.
func OrderDesc(cards []Card, suit Suit, mode BirdMode, includeBird bool) []Card {
	held := make(map[Card]bool, len(cards))
	for _, c := range cards {
		held[c] = true
	}
	out := make([]Card, 0, len(cards))
	for _, c := range SuitDesc(suit, mode, includeBird) {
		if held[c] {
			out = append(out, c)
		}
	}
	return out
}

// Points is the scoring value of a card.
func Points(c Card) int {
	if c.IsBird() {
		return 20
	}
	switch c.Rank {
	case RankAce:
		return 15
	case 14, 10:
		return 10
	case 5:
		return 5
	}
	return 0
}

// PointsOf sums Points over cards.
func PointsOf(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += Points(c)
	}
	return total
}

// Strength orders any card for the given round: trump cards (the bird included)
// above every other card, each group by its SuitDesc position. Higher is stronger.
// It only ranks cards against each other; it does not decide tricks.
func Strength(c Card, round *Round) int {
	mode := round.Rules.BirdMode
	suit := EffectiveSuit(c, round)
	trump, declared := round.Trump()
	desc := SuitDesc(suit, mode, c.IsBird())
	base := 0
	if declared && suit == trump {
		desc = SuitDesc(trump, mode, true)
		base = 100
	}
	for i, d := range desc {
		if d == c {
			return base + len(desc) - i
		}
	}
	return 0
}

// EffectiveSuit is the card's suit, with the bird counted as trump once declared.
func EffectiveSuit(c Card, round *Round) Suit {
	if !c.IsBird() {
		return c.Suit
	}
	if trump, ok := round.Trump(); ok {
		return trump
	}
	return SuitNone
}
