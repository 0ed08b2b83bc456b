package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/youruser/hearthdeck/internal/deck"
	imagepkg "github.com/youruser/hearthdeck/internal/image"
)

var deckCommand = &cli.Command{
	Name:      "deck",
	Usage:     "Decode a deck code (or whole pasted deck text) and print the list",
	ArgsUsage: "<code or pasted text>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "override the format from the code (twist, duels, ...)",
		},
		&cli.StringFlag{
			Name:    "comp",
			Usage:   "second deck code to compare against",
		},
		&cli.StringFlag{
			Name:  "qr",
			Usage: "write a QR code PNG of the deck code to this path",
		},
	},
	Action: runDeck,
}

func runDeck(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("deck code required", 2)
	}
	text := strings.Join(c.Args().Slice(), " ")

	store, err := newStore(c)
	if err != nil {
		return err
	}
	if err := store.Ensure(c.Context); err != nil {
		return err
	}

	d, err := deck.FromPasted(text, c.String("mode"), store)
	if err != nil {
		return err
	}

	if other := c.String("comp"); other != "" {
		d2, err := deck.FromPasted(other, c.String("mode"), store)
		if err != nil {
			return fmt.Errorf("second deck: %w", err)
		}
		deck.RenderDifference(os.Stdout, deck.Compare(d, d2))
		return nil
	}

	deck.Render(os.Stdout, d)

	if path := c.String("qr"); path != "" {
		png, err := imagepkg.QRPNG(d.Code, 400)
		if err != nil {
			return err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return err
		}
		fmt.Println("QR code written to", path)
	}
	return nil
}
