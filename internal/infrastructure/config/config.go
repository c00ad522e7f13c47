package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Database DatabaseConfig `mapstructure:"database"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
}

// TelegramConfig configures the bot transport.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	Debug    bool   `mapstructure:"debug"`
}

// DatabaseConfig selects and configures the photo store backend. The
// backend is chosen once at startup: an empty URL means the embedded
// SQLite file at Path, a non-empty URL means pooled Postgres. There is no
// runtime switching.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`       // Postgres DSN; empty = use SQLite
	Path     string `mapstructure:"path"`      // SQLite file path
	MaxConns int    `mapstructure:"max_conns"` // Postgres pool size
}

// UsesPostgres reports whether the pooled backend is selected.
func (c DatabaseConfig) UsesPostgres() bool {
	return c.URL != ""
}

// HTTPConfig configures the optional operational HTTP surface. An empty
// Addr disables it.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration: defaults, then an optional config.yaml in
// ./config or ., then KARTINKE_-prefixed environment variables. The bare
// BOT_TOKEN and DATABASE_URL variables are honored as aliases so the
// service keeps working with the hosting environments that inject them.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("KARTINKE")
	v.AutomaticEnv()
	_ = v.BindEnv("telegram.bot_token", "KARTINKE_TELEGRAM_BOT_TOKEN", "BOT_TOKEN")
	_ = v.BindEnv("database.url", "KARTINKE_DATABASE_URL", "DATABASE_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the invariants a running bot needs.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is not set (BOT_TOKEN)")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "photos.db")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
