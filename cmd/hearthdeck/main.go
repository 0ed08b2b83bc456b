package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/youruser/hearthdeck/internal/cards"
	"github.com/youruser/hearthdeck/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &cli.App{
		Name:  "hearthdeck",
		Usage: "Look up Hearthstone decks and cards from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "./config.toml",
				Usage:   "config file",
			},
		},
		Commands: []*cli.Command{
			deckCommand,
			cardCommand,
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("[hearthdeck] command failed", "err", err)
		os.Exit(1)
	}
}

// newStore builds the card store from the config named on the command line.
func newStore(c *cli.Context) (*cards.Store, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	slog.SetLogLoggerLevel(config.ParseLevel(cfg.Log.Level))
	client := cards.NewClient(cfg.CardAPI.BaseURL, cfg.CardAPI.Locale, cfg.CardAPI.TimeoutDuration())
	return cards.NewStore(client, cfg.Cache.TTLDuration()), nil
}
