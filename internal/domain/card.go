package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four card colors. SuitNone belongs to the bird only.
type Suit int

const (
	SuitNone Suit = iota
	Black
	Orange
	Green
	Red
)

// Suits lists the four real suits in deck order.
var Suits = [4]Suit{Black, Orange, Green, Red}

var suitNames = map[Suit]string{
	SuitNone: "none",
	Black:    "black",
	Orange:   "orange",
	Green:    "green",
	Red:      "red",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "suit(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the four real suits.
func (s Suit) Valid() bool {
	return s >= Black && s <= Red
}

// ParseSuit accepts a suit name or its first letter.
func ParseSuit(v string) (Suit, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range Suits {
		name := suitNames[s]
		if v == name || (len(v) == 1 && v[0] == name[0]) {
			return s, nil
		}
	}
	return SuitNone, fmt.Errorf("unknown suit %q", v)
}

func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	if string(b) == suitNames[SuitNone] {
		*s = SuitNone
		return nil
	}
	v, err := ParseSuit(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Rank values run 5..14 with 1 as the top card of a suit.
const (
	RankAce = 1
	RankLow = 5
	RankTop = 14
)

// Ranks lists the suited ranks in ascending strength.
var Ranks = [...]int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 1}

// Card is an immutable card value. The bird is the zero Card.
type Card struct {
	Suit Suit
	Rank int
}

// Bird is the single suitless wildcard.
var Bird = Card{}

// IsBird reports whether c is the wildcard.
func (c Card) IsBird() bool { return c == Bird }

// Valid reports whether c is the bird or a suited card with a deck rank.
func (c Card) Valid() bool {
	if c.IsBird() {
		return true
	}
	if !c.Suit.Valid() {
		return false
	}
	return c.Rank == RankAce || (c.Rank >= RankLow && c.Rank <= RankTop)
}

// String renders the card as "bird" or suit initial plus rank, e.g. "g14".
func (c Card) String() string {
	if c.IsBird() {
		return "bird"
	}
	return c.Suit.String()[:1] + strconv.Itoa(c.Rank)
}

// ParseCard is the inverse of Card.String.
func ParseCard(v string) (Card, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "bird" {
		return Bird, nil
	}
	if len(v) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", v)
	}
	suit, err := ParseSuit(v[:1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", v, err)
	}
	rank, err := strconv.Atoi(v[1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", v, err)
	}
	c := Card{Suit: suit, Rank: rank}
	if !c.Valid() {
		return Card{}, fmt.Errorf("invalid card %q: rank out of range", v)
	}
	return c, nil
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(b []byte) error {
	v, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Seat identifies one of the four players, 0..3, in play rotation order.
type Seat int

// NumSeats is the fixed table size.
const NumSeats = 4

// Next returns the seat to the left.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Valid reports whether s is a table seat.
func (s Seat) Valid() bool {
	return s >= 0 && s < NumSeats
}
