package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadServer_Defaults(t *testing.T) {
	cfg, err := LoadServer(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 64, cfg.Shards)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Minute, cfg.ReapInterval)
}

func TestLoadServer_EnvThenFlags(t *testing.T) {
	t.Setenv("TICTACTOE_GRPC_PORT", "6000")
	t.Setenv("TICTACTOE_SESSION_TTL", "5m")

	cfg, err := LoadServer(newFlagSet(), []string{"-grpc-port", "7000", "-http-port", "9090"})
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.GRPCPort)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
}

func TestLoadServer_BadEnv(t *testing.T) {
	t.Setenv("TICTACTOE_HTTP_PORT", "not-a-port")

	_, err := LoadServer(newFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadServer_Invalid(t *testing.T) {
	_, err := LoadServer(newFlagSet(), []string{"-session-ttl", "0s", "-grpc-port", "70000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ttl")
	assert.Contains(t, err.Error(), "grpc port")
}

func TestLoadClient(t *testing.T) {
	t.Setenv("TICTACTOE_ADDR", "localhost:50051")

	cfg, err := LoadClient(newFlagSet(), []string{"-game", "abc"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:50051", cfg.Addr)
	assert.Equal(t, "abc", cfg.GameID)
}
