package nakama

const (
	// RpcSimulateRound is the Nakama RPC id clients call to play out bot rounds.
	RpcSimulateRound = "rook_simulate_round"

	// EnvGameConfig names the runtime env key holding the game config path.
	EnvGameConfig = "rook_game_config"
)

// gRPC status codes used in runtime errors.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
