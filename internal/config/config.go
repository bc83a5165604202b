package config

import (
	"errors"
	"os"

	"blackjack-engine/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for a blackjack table
type Config struct {
	loaded bool

	// Decks is how many 52-card decks go into a shoe
	Decks int `yaml:"decks" envconfig:"decks"`

	// Seed is the shuffle seed for the first shoe. Zero picks a random seed.
	Seed int64 `yaml:"seed" envconfig:"seed"`

	StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`
	MinBet          int `yaml:"minBet" envconfig:"min_bet"`

	// ReshuffleBelow builds a fresh shoe between rounds once fewer cards than this remain
	ReshuffleBelow int `yaml:"reshuffleBelow" envconfig:"reshuffle_below"`

	Players []string `yaml:"players" envconfig:"players"`

	Log struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log" envconfig:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing else is specified
func DefaultConfig() Config {
	cfg := Config{
		Decks:           6,
		StartingBalance: 1000,
		MinBet:          10,
		ReshuffleBelow:  78,
		Players:         []string{},
	}
	cfg.Log.Level = "info"

	return cfg
}

// Validate returns an error if the configuration cannot run a table
func (c Config) Validate() error {
	if c.Decks < 1 {
		return errors.New("decks must be >= 1")
	}

	if c.MinBet <= 0 {
		return errors.New("minBet must be > 0")
	}

	if c.StartingBalance < 0 {
		return errors.New("startingBalance must be >= 0")
	}

	if c.ReshuffleBelow < 0 {
		return errors.New("reshuffleBelow must be >= 0")
	}

	return nil
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration into the singleton
// The file is named by BJ_CONFIG_FILE and defaults to config.yaml
func Load() error {
	cfg, err := LoadFile(util.Getenv("BJ_CONFIG_FILE", "config.yaml"))
	if err != nil {
		return err
	}

	config = cfg
	return nil
}

// LoadFile will load the configuration from a YAML file, then apply BJ_* environment overrides.
// A missing file is not an error, the defaults are used instead.
func LoadFile(configFile string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cfg.loaded = true
	return cfg, nil
}
