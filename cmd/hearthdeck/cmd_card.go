package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/youruser/hearthdeck/internal/cards"
)

var cardCommand = &cli.Command{
	Name:      "card",
	Usage:     "Search cards by name or text",
	ArgsUsage: "<search words>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "image",
			Aliases: []string{"i"},
			Usage:   "print card image links",
		},
		&cli.IntFlag{
			Name:  "limit",
			Value: 10,
			Usage: "maximum number of results",
		},
	},
	Action: runCard,
}

func runCard(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("search words required", 2)
	}
	query := strings.Join(c.Args().Slice(), " ")

	store, err := newStore(c)
	if err != nil {
		return err
	}
	if err := store.Ensure(c.Context); err != nil {
		return err
	}

	found := store.Search(query)
	if len(found) == 0 {
		return cli.Exit(fmt.Sprintf("no cards match %q", query), 1)
	}
	if limit := c.Int("limit"); limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	bold := color.New(color.Bold)
	for _, card := range found {
		line := fmt.Sprintf("(%d) %s - %s %s", card.Cost, bold.Sprint(card.Name), card.Class, rarityTag(card.Rarity))
		fmt.Println(strings.TrimRight(line, " "))
		if card.Text != "" {
			fmt.Println("   ", card.Text)
		}
		if c.Bool("image") && card.ImageURL != "" {
			fmt.Println("   ", card.ImageURL)
		}
	}
	return nil
}

func rarityTag(r cards.Rarity) string {
	switch r {
	case cards.RarityLegendary:
		return color.YellowString("[legendary]")
	case cards.RarityEpic:
		return color.MagentaString("[epic]")
	case cards.RarityRare:
		return color.BlueString("[rare]")
	case "":
		return ""
	default:
		return "[" + string(r) + "]"
	}
}
