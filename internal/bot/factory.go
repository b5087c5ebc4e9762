package bot

import (
	"errors"
	"fmt"
	"strings"

	"rook/internal/domain"
)

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelRandom BotLevel = iota
	BotLevelGood
	BotLevelSmart
)

// ErrIllegalChoice is returned when a strategy picks a card outside the legal set.
var ErrIllegalChoice = errors.New("strategy chose an illegal card")

// DefaultNames are the seat names used when none are configured.
var DefaultNames = [domain.NumSeats]string{"alf", "bess", "cate", "duke"}

func (l BotLevel) String() string {
	switch l {
	case BotLevelGood:
		return "good"
	case BotLevelSmart:
		return "smart"
	}
	return "random"
}

// ParseBotLevel accepts "random", "good" or "smart".
func ParseBotLevel(v string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "random", "":
		return BotLevelRandom, nil
	case "good":
		return BotLevelGood, nil
	case "smart":
		return BotLevelSmart, nil
	}
	return BotLevelRandom, fmt.Errorf("unknown bot level %q", v)
}

// NewBrain creates a new strategy for the specified level.
func NewBrain(level BotLevel, src domain.Source) (Brain, error) {
	switch level {
	case BotLevelRandom:
		if src == nil {
			return nil, errors.New("random bot needs a source")
		}
		return &RandomBot{src: src}, nil
	case BotLevelGood:
		return &GoodBot{}, nil
	case BotLevelSmart:
		return NewSmartBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// NewAgents seats four agents. Missing names fall back to DefaultNames and
// missing levels to the random strategy.
func NewAgents(names []string, levels []BotLevel, src domain.Source) ([domain.NumSeats]*Agent, error) {
	var agents [domain.NumSeats]*Agent
	for seat := range agents {
		name := DefaultNames[seat]
		if seat < len(names) && names[seat] != "" {
			name = names[seat]
		}
		level := BotLevelRandom
		if seat < len(levels) {
			level = levels[seat]
		}
		brain, err := NewBrain(level, src)
		if err != nil {
			return agents, fmt.Errorf("seat %d: %w", seat, err)
		}
		agents[seat] = &Agent{ID: fmt.Sprintf("seat-%d", seat), Name: name, Strategy: brain}
	}
	return agents, nil
}
