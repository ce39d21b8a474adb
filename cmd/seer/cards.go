package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/output"
	"github.com/johnconnor-sec/seer-go/internal/tarot"
)

func newCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cards [name]",
		Short: "List the deck, or show the meanings of one card",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, c := range tarot.NewDeck().Cards() {
				if strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(toComplete)) {
					names = append(names, c.Name)
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			deck := tarot.NewDeck()
			f := output.NewFormatter(cmd.OutOrStdout())

			if len(args) == 0 {
				f.Header(fmt.Sprintf("The %s deck (%d cards)", deck.Type, deck.Len()))
				table := f.Table()
				table.Headers("Card", "Arcana", "Suit", "Number")
				for _, c := range deck.Cards() {
					table.Row(c.Name, string(c.Arcana), string(c.Suit), strconv.Itoa(c.Number))
				}
				table.Print()
				return nil
			}

			card, ok := deck.Find(args[0])
			if !ok {
				return errors.New(errors.CardNotFound, "No such card in the deck").
					WithDetails(fmt.Sprintf("Card: %s", args[0])).
					WithSuggestion("Run 'seer cards' to list every card")
			}

			f.Header(card.Name)
			f.KeyValue("Arcana", card.Arcana)
			if card.Suit != tarot.NoSuit {
				f.KeyValue("Suit", card.Suit)
			}
			f.KeyValue("Upright", card.Upright)
			f.KeyValue("Reversed", card.Reversed)
			return nil
		},
	}
}
