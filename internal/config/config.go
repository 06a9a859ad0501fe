// Package config loads the sheet's settings from a config file, RPGSHEET_*
// environment variables and command line flags
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// EnvPrefix prefixes every environment override, RPGSHEET_REDIS_ENDPOINT for redis.endpoint
const EnvPrefix = "RPGSHEET"

// ServerConfig holds the gRPC server and client settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
	// Address is the server the client commands dial
	Address string `mapstructure:"address"`
}

// RedisConfig holds the session store connection. An empty endpoint keeps sessions in memory.
type RedisConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	PoolSize int    `mapstructure:"pool_size"`
	UseTLS   bool   `mapstructure:"use_tls"`
}

// SessionConfig holds the session defaults
type SessionConfig struct {
	ID           string        `mapstructure:"id"`
	TTL          time.Duration `mapstructure:"ttl"`
	HistoryLimit int           `mapstructure:"history_limit"`
}

// SheetConfig points at the character files. Empty paths use the embedded sheet.
type SheetConfig struct {
	Path      string `mapstructure:"path"`
	SkillsCSV string `mapstructure:"skills_csv"`
}

// DiceConfig selects the dice source. A zero seed uses the default random roller.
type DiceConfig struct {
	Seed uint64 `mapstructure:"seed"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Config is the top-level application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Session SessionConfig `mapstructure:"session"`
	Sheet   SheetConfig   `mapstructure:"sheet"`
	Dice    DiceConfig    `mapstructure:"dice"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate collects every violation into one InvalidArgument error
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	errors.ValidateRequired("server.address", c.Server.Address, vb)
	errors.ValidateMin("redis.pool_size", c.Redis.PoolSize, 0, vb)

	errors.ValidateRequired("session.id", c.Session.ID, vb)
	if c.Session.TTL <= 0 {
		vb.Field("session.ttl", "must be positive")
	}
	errors.ValidateMin("session.history_limit", c.Session.HistoryLimit, 1, vb)

	errors.ValidateEnum("logging.level", strings.ToLower(c.Logging.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("logging.format", strings.ToLower(c.Logging.Format), []string{"text", "json"}, vb)
	errors.ValidateMin("logging.max_size_mb", c.Logging.MaxSizeMB, 0, vb)
	errors.ValidateMin("logging.max_backups", c.Logging.MaxBackups, 0, vb)
	errors.ValidateMin("logging.max_age_days", c.Logging.MaxAgeDays, 0, vb)

	return vb.Build()
}

// New returns a viper instance with defaults and environment overrides applied
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// BindFlags binds the persistent flags of the CLI to their config keys
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"server.port":           "port",
		"server.address":        "server",
		"redis.endpoint":        "redis",
		"session.id":            "session",
		"session.history_limit": "history-limit",
		"sheet.path":            "sheet",
		"sheet.skills_csv":      "skills",
		"dice.seed":             "seed",
		"logging.level":         "log-level",
		"logging.format":        "log-format",
		"logging.file":          "log-file",
	}

	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", name)
		}
	}
	return nil
}

// Load reads the optional config file into v and returns the validated configuration
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.address", "localhost:50051")

	v.SetDefault("redis.endpoint", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.use_tls", false)

	v.SetDefault("session.id", "local")
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("session.history_limit", 50)

	v.SetDefault("sheet.path", "")
	v.SetDefault("sheet.skills_csv", "")

	v.SetDefault("dice.seed", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
}
