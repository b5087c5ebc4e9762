package nakama

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"

	"rook/internal/app"
	"rook/internal/bot"
	"rook/internal/config"
	"rook/internal/domain"
)

// SimulateResponse is returned by RpcSimulateRound.
type SimulateResponse struct {
	Rounds []RoundSummary `json:"rounds"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	return initializer.RegisterRpc(RpcSimulateRound, rpcSimulateRound)
}

// rpcSimulateRound plays bot-only rounds.
//
// Payload: optional JSON object overriding game config keys, e.g.
// {"bird_mode":"high","seed":7,"rounds":2,"bot_levels":"smart,good"}.
// Returns: JSON SimulateResponse.
func rpcSimulateRound(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	logger = logger.WithField("user", userID)

	overrides := map[string]interface{}{}
	if strings.TrimSpace(payload) != "" {
		dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
		dec.UseNumber()
		if err := dec.Decode(&overrides); err != nil {
			logger.Warn("invalid simulate payload: %v", err)
			return "", runtime.NewError("Invalid payload", codeInvalidArgument)
		}
	}

	cfg, err := config.GetGameConfig().WithOverrides(overrides)
	if err != nil {
		logger.Warn("rejected overrides: %v", err)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	resp, err := simulate(cfg, logger)
	if err != nil {
		logger.Error("simulation failed: %v", err)
		if errors.Is(err, domain.ErrConfig) {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		return "", runtime.NewError("Internal error", codeInternal)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return string(b), nil
}

func simulate(cfg config.GameConfig, logger runtime.Logger) (SimulateResponse, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return SimulateResponse{}, err
	}
	levels, err := cfg.Levels()
	if err != nil {
		return SimulateResponse{}, err
	}

	var src domain.Source
	if cfg.Seed != 0 {
		src = domain.NewSource(cfg.Seed)
	}
	svc := app.NewService(src, logger, app.WithRules(rules))
	agents, err := bot.NewAgents(cfg.SeatNames, levels, svc.Source())
	if err != nil {
		return SimulateResponse{}, err
	}

	resp := SimulateResponse{Rounds: make([]RoundSummary, 0, cfg.Rounds)}
	for i := 0; i < cfg.Rounds; i++ {
		st, _, err := svc.PlayRound(agents)
		if err != nil {
			return SimulateResponse{}, err
		}
		resp.Rounds = append(resp.Rounds, summarizeRound(st))
	}
	return resp, nil
}
