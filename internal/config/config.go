// Package config resolves stoich settings from defaults, an optional YAML
// file, STOICH_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix (STOICH_LOG_LEVEL, STOICH_REDIS_ADDR, ...).
const EnvPrefix = "STOICH"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Format   string       `mapstructure:"format"`
	Verify   bool         `mapstructure:"verify"`
	Server   ServerConfig `mapstructure:"server"`
	Redis    RedisConfig  `mapstructure:"redis"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig configures the optional result cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"format":     "format",
	"verify":     "verify",
	"addr":       "server.addr",
	"redis-addr": "redis.addr",
	"redis-db":   "redis.db",
	"redis-ttl":  "redis.ttl",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("format", FormatText)
	v.SetDefault("verify", true)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "stoich:balance:")
	v.SetDefault("redis.ttl", 24*time.Hour)
}

// Load resolves the configuration.
// path may be empty (no file). flags may be nil; only flags that exist in
// the set are bound, so each subcommand can expose a subset.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (want text, json or yaml)", ErrInvalidConfig, c.Format)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("%w: redis.db %d", ErrInvalidConfig, c.Redis.DB)
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("%w: redis.ttl %s", ErrInvalidConfig, c.Redis.TTL)
	}

	return nil
}
