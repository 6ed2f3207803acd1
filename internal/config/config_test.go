package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/stoich/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.True(t, cfg.Verify)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "stoich:balance:", cfg.Redis.Prefix)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
}

func TestLoad_FileEnvFlagsPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stoich.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
format: json
server:
  addr: ":9000"
redis:
  addr: "localhost:6379"
  ttl: 1h
`), 0o600))

	t.Setenv("STOICH_FORMAT", "yaml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", ":8080", "")
	require.NoError(t, flags.Parse([]string{"--addr", ":7000"}))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)         // file
	assert.Equal(t, config.FormatYAML, cfg.Format) // env beats file
	assert.Equal(t, ":7000", cfg.Server.Addr)      // changed flag beats file
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
}

func TestLoad_UnchangedFlagKeepsFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stoich.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9100\"\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", ":8080", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Server.Addr)
}

func TestLoad_RedisFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("redis-addr", "", "")
	flags.Int("redis-db", 0, "")
	flags.Duration("redis-ttl", 24*time.Hour, "")
	require.NoError(t, flags.Parse([]string{"--redis-addr", "cache:6379", "--redis-db", "3", "--redis-ttl", "90s"}))

	cfg, err := config.Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("STOICH_FORMAT", "xml")
	_, err := config.Load("", nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}
