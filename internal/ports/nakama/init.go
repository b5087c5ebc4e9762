package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"rook/internal/config"
)

// InitModule loads the game config and wires RPCs for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if path := env[EnvGameConfig]; path != "" {
		if err := config.LoadGameConfig(path); err != nil {
			logger.Error("game config %s: %v", path, err)
			return err
		}
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Rook Go module loaded.")
	return nil
}
