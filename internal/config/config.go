package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"

	"rook/internal/bot"
	"rook/internal/domain"
)

// MaxRounds caps how many rounds one request may simulate.
const MaxRounds = 100

type GameConfig struct {
	// BirdMode places the bird inside trump: "low", "10.5" or "high".
	BirdMode string `json:"bird_mode"`
	// PartnerMode is "pick" (bidder names a partner card) or "none".
	PartnerMode string `json:"partner_mode"`
	// Seed fixes the shuffle; zero seeds from the clock.
	Seed      uint64   `json:"seed"`
	Rounds    int      `json:"rounds"`
	BotLevels []string `json:"bot_levels"`
	SeatNames []string `json:"seat_names"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Default is the configuration used when no file is loaded.
func Default() GameConfig {
	return GameConfig{
		BirdMode:    domain.BirdMid.String(),
		PartnerMode: domain.PartnerPick.String(),
		Rounds:      1,
		BotLevels:   []string{"random", "random", "random", "random"},
		SeatNames:   append([]string(nil), bot.DefaultNames[:]...),
	}
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}
		c, err := ParseGameConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or the defaults when
// nothing was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return Default()
	}
	c := *cfg
	c.BotLevels = append([]string(nil), cfg.BotLevels...)
	c.SeatNames = append([]string(nil), cfg.SeatNames...)
	return c
}

// ParseGameConfig decodes JSON over the defaults and validates the result.
func ParseGameConfig(data []byte) (GameConfig, error) {
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return GameConfig{}, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return GameConfig{}, err
	}
	return c, nil
}

// Validate checks every field that the engine parses later.
func (c GameConfig) Validate() error {
	if _, err := c.Rules(); err != nil {
		return err
	}
	if _, err := c.Levels(); err != nil {
		return err
	}
	if len(c.SeatNames) > domain.NumSeats {
		return fmt.Errorf("%w: %d seat names for %d seats", domain.ErrConfig, len(c.SeatNames), domain.NumSeats)
	}
	if c.Rounds < 1 || c.Rounds > MaxRounds {
		return fmt.Errorf("%w: rounds must be between 1 and %d, got %d", domain.ErrConfig, MaxRounds, c.Rounds)
	}
	return nil
}

// Rules converts the variant settings.
func (c GameConfig) Rules() (domain.Rules, error) {
	bird, err := domain.ParseBirdMode(c.BirdMode)
	if err != nil {
		return domain.Rules{}, err
	}
	partner, err := domain.ParsePartnerMode(c.PartnerMode)
	if err != nil {
		return domain.Rules{}, err
	}
	return domain.Rules{BirdMode: bird, PartnerMode: partner}, nil
}

// Levels parses the per-seat strategy names.
func (c GameConfig) Levels() ([]bot.BotLevel, error) {
	if len(c.BotLevels) > domain.NumSeats {
		return nil, fmt.Errorf("%w: %d bot levels for %d seats", domain.ErrConfig, len(c.BotLevels), domain.NumSeats)
	}
	levels := make([]bot.BotLevel, 0, len(c.BotLevels))
	for _, v := range c.BotLevels {
		l, err := bot.ParseBotLevel(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrConfig, err)
		}
		levels = append(levels, l)
	}
	return levels, nil
}

// WithOverrides returns a copy of c with the given loosely typed values
// applied, e.g. from an RPC payload. Numbers may arrive as strings and lists
// as comma separated strings. Unknown keys are rejected.
func (c GameConfig) WithOverrides(overrides map[string]interface{}) (GameConfig, error) {
	out := c
	out.BotLevels = append([]string(nil), c.BotLevels...)
	out.SeatNames = append([]string(nil), c.SeatNames...)
	if len(overrides) == 0 {
		return out, out.Validate()
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		Result:           &out,
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		ZeroFields:       true,
	})
	if err != nil {
		return GameConfig{}, err
	}
	if err := decoder.Decode(overrides); err != nil {
		return GameConfig{}, fmt.Errorf("%w: %v", domain.ErrConfig, err)
	}
	if err := out.Validate(); err != nil {
		return GameConfig{}, err
	}
	return out, nil
}
