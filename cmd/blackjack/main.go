package main

import (
	"os"
	"strings"

	"blackjack-engine/internal/config"
	"blackjack-engine/internal/util"
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// Version is the engine version
var Version = "v0.0.0-dev"

// CLI is the blackjack command line
type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Config file (defaults to $BJ_CONFIG_FILE or config.yaml)" type:"path"`
	Simulate SimulateCmd      `cmd:"" help:"Play rounds automatically and print a summary"`
	Play     PlayCmd          `cmd:"" help:"Play interactively from the terminal"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Multi-player blackjack table"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)

	cfg, err := loadConfig(cli.Config)
	ctx.FatalIfErrorf(err)
	setupLogger(cfg)

	err = ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		if err := config.Load(); err != nil {
			return config.Config{}, err
		}

		return config.Instance(), nil
	}

	return config.LoadFile(path)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.EqualFold(util.Getenv("LOG_FORMAT", "text"), "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// stdout belongs to the game
	logrus.SetOutput(os.Stderr)
}
