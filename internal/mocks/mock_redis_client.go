package mocks

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockRedisClient mocks the calls the seat hold scripts make. Any other
// UniversalClient method panics on the nil embedded client.
type MockRedisClient struct {
	mock.Mock
	redis.UniversalClient
}

func (m *MockRedisClient) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	callArgs := append([]interface{}{ctx, sha1, keys}, args...)
	result := m.Called(callArgs...)
	return result.Get(0).(*redis.Cmd)
}

func (m *MockRedisClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

// ScriptResult builds the reply of an EvalSha call.
func ScriptResult(ctx context.Context, val interface{}, err error) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if err != nil {
		cmd.SetErr(err)
		return cmd
	}

	cmd.SetVal(val)
	return cmd
}

// SeatIDsResult builds a script reply listing seat IDs the way Lua returns
// them.
func SeatIDsResult(ctx context.Context, seatIDs ...string) *redis.Cmd {
	val := make([]interface{}, len(seatIDs))
	for i, id := range seatIDs {
		val[i] = id
	}

	return ScriptResult(ctx, val, nil)
}

type MockRedisError struct {
	Msg string
}

func (m MockRedisError) Error() string {
	return m.Msg
}

func (m MockRedisError) RedisError() {}
