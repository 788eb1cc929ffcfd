package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lazharichir/blackjack/cards"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings for one game session
type Config struct {
	// Decks is the shoe size; 0 means ask at startup
	Decks       int    `mapstructure:"decks"`
	Seed        int64  `mapstructure:"seed"`
	LogLevel    string `mapstructure:"log-level"`
	DebugEvents bool   `mapstructure:"debug-events"`
}

// Defaults are applied before the config file, environment and flags.
var Defaults = map[string]any{
	"decks":        0,
	"seed":         int64(0),
	"log-level":    "warn",
	"debug-events": false,
}

var logLevels = []string{"debug", "info", "warn", "error"}

// ErrInvalidLogLevel is returned for a log level outside debug, info, warn and error.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Load reads blackjack.yaml (from configFile if set, otherwise the user
// config dir or the working directory), then BLACKJACK_* environment
// variables, then the command's flags.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("blackjack")
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "blackjack"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("blackjack")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, c.Validate()
}

// Validate checks the values that can be checked before the game starts.
func (c Config) Validate() error {
	if c.Decks != 0 {
		if err := ValidateDecks(c.Decks); err != nil {
			return err
		}
	}

	for _, level := range logLevels {
		if c.LogLevel == level {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
}

// ValidateDecks checks a deck count entered at the prompt or configured.
func ValidateDecks(n int) error {
	if n < cards.MinDecks || n > cards.MaxDecks {
		return fmt.Errorf("%w: %d (want %d-%d)", cards.ErrInvalidDeckCount, n, cards.MinDecks, cards.MaxDecks)
	}
	return nil
}
