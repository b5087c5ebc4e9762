package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type rpcFunc = func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)

// fakeInitializer records registered RPCs; every other method panics.
type fakeInitializer struct {
	runtime.Initializer
	rpcs map[string]rpcFunc
}

func (f *fakeInitializer) RegisterRpc(id string, fn rpcFunc) error {
	if f.rpcs == nil {
		f.rpcs = map[string]rpcFunc{}
	}
	f.rpcs[id] = fn
	return nil
}

func simulateCtx() context.Context {
	return context.WithValue(context.Background(), runtime.RUNTIME_CTX_USER_ID, "user123")
}

func TestInitModuleRegistersSimulate(t *testing.T) {
	ini := &fakeInitializer{}
	require.NoError(t, InitModule(context.Background(), noopLogger{}, nil, nil, ini))
	assert.Contains(t, ini.rpcs, RpcSimulateRound)
}

func TestRpcSimulateRound(t *testing.T) {
	raw, err := rpcSimulateRound(simulateCtx(), noopLogger{}, nil, nil,
		`{"seed":"21","rounds":2,"bird_mode":"high","bot_levels":"smart,good,smart,random"}`)
	require.NoError(t, err)

	var resp SimulateResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	require.Len(t, resp.Rounds, 2)

	for _, r := range resp.Rounds {
		assert.Len(t, r.RoundID, 36)
		assert.Equal(t, [4]string{"alf", "bess", "cate", "duke"}, r.Seats)
		assert.Len(t, r.Tricks, 10)
		assert.Len(t, r.Discards, 5)
		total := 0
		for _, s := range r.Scores {
			total += s
		}
		assert.Equal(t, 180, total)
		assert.Equal(t, r.LeaderScore > r.Bid, r.Made)
		assert.NotNil(t, r.Partner)
		assert.Equal(t, r.Bidder, r.Tricks[0].Leader)
	}

	again, err := rpcSimulateRound(simulateCtx(), noopLogger{}, nil, nil, `{"seed":21,"rounds":2,"bird_mode":"high","bot_levels":["smart","good","smart","random"]}`)
	require.NoError(t, err)
	var resp2 SimulateResponse
	require.NoError(t, json.Unmarshal([]byte(again), &resp2))
	for i := range resp.Rounds {
		resp.Rounds[i].RoundID, resp2.Rounds[i].RoundID = "", ""
	}
	assert.Equal(t, resp, resp2, "same seed replays the same rounds")
}

func TestRpcSimulateRound_EmptyPayloadUsesDefaults(t *testing.T) {
	raw, err := rpcSimulateRound(simulateCtx(), noopLogger{}, nil, nil, "")
	require.NoError(t, err)

	var resp SimulateResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Len(t, resp.Rounds, 1)
}

func TestRpcSimulateRound_InvalidInput(t *testing.T) {
	for name, payload := range map[string]string{
		"not json":    `{`,
		"unknown key": `{"colour":"red"}`,
		"bad mode":    `{"bird_mode":"sideways"}`,
		"too many":    `{"rounds":1000}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := rpcSimulateRound(simulateCtx(), noopLogger{}, nil, nil, payload)
			require.Error(t, err)
			var rtErr *runtime.Error
			require.True(t, errors.As(err, &rtErr))
			assert.Equal(t, codeInvalidArgument, rtErr.Code)
		})
	}
}
