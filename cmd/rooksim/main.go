// Command rooksim plays bot-only Rook rounds and logs each outcome.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"rook/internal/app"
	"rook/internal/bot"
	"rook/internal/config"
	"rook/internal/domain"
	"rook/internal/logging"
)

var (
	configPath = flag.String("config", "", "Path to a JSON game config. Defaults are used when empty.")
	seed       = flag.Uint64("seed", 0, "Shuffle seed; overrides the config when non-zero.")
	rounds     = flag.Int("rounds", 0, "Rounds to play; overrides the config when non-zero.")
	verbose    = flag.Bool("verbose", false, "Log every trick.")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	zl, err := newZap(*verbose)
	if err != nil {
		return err
	}
	defer zl.Sync() //nolint:errcheck

	if *configPath != "" {
		if err := config.LoadGameConfig(*configPath); err != nil {
			return err
		}
	}
	overrides := map[string]interface{}{}
	if *seed != 0 {
		overrides["seed"] = *seed
	}
	if *rounds != 0 {
		overrides["rounds"] = *rounds
	}
	cfg, err := config.GetGameConfig().WithOverrides(overrides)
	if err != nil {
		return err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	levels, err := cfg.Levels()
	if err != nil {
		return err
	}

	var src domain.Source
	if cfg.Seed != 0 {
		src = domain.NewSource(cfg.Seed)
	}
	svc := app.NewService(src, logging.NewZap(zl), app.WithRules(rules))
	agents, err := bot.NewAgents(cfg.SeatNames, levels, svc.Source())
	if err != nil {
		return err
	}

	made := 0
	for i := 0; i < cfg.Rounds; i++ {
		st, _, err := svc.PlayRound(agents)
		if err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
		if st.Outcome.Made {
			made++
		}
	}
	zl.Info("simulation finished",
		zap.Int("rounds", cfg.Rounds),
		zap.Int("bids_made", made),
		zap.Stringer("bird_mode", rules.BirdMode),
		zap.Stringer("partner_mode", rules.PartnerMode),
	)
	return nil
}

func newZap(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
