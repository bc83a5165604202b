package main

import (
	"os"

	"blackjack-engine/internal/config"
	"blackjack-engine/internal/session"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// SimulateCmd plays rounds with every seat hitting below 17
type SimulateCmd struct {
	Rounds int   `short:"n" default:"100" help:"Number of rounds to play"`
	Seed   int64 `help:"Shuffle seed for the first shoe, overrides the config"`
}

// Run plays the rounds and writes the summary as YAML
func (s *SimulateCmd) Run(cfg config.Config) error {
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}

	table, err := session.New(cfg, logrus.StandardLogger())
	if err != nil {
		return err
	}

	summary, err := table.Simulate(session.MimicDealer{}, s.Rounds)
	if err != nil {
		return err
	}

	return yaml.NewEncoder(os.Stdout).Encode(summary)
}
