package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all server settings. Values come from an optional YAML file
// plus HH_* environment overrides.
type Config struct {
	HTTPAddr   string        `mapstructure:"http_addr"`
	DataDir    string        `mapstructure:"data_dir"`
	MinPlayers int           `mapstructure:"min_players"`
	MaxPlayers int           `mapstructure:"max_players"`
	DiceMin    int           `mapstructure:"dice_min"`
	DiceMax    int           `mapstructure:"dice_max"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	LogLevel   string        `mapstructure:"log_level"`
}

// Load reads configuration from the given file path. A missing file is not
// an error; defaults and environment overrides still apply.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("data_dir", "data")
	v.SetDefault("min_players", 3)
	v.SetDefault("max_players", 6)
	v.SetDefault("dice_min", 1)
	v.SetDefault("dice_max", 16)
	v.SetDefault("session_ttl", 24*time.Hour)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("HH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
