package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/output"
	"github.com/johnconnor-sec/seer-go/internal/store"
	"github.com/johnconnor-sec/seer-go/internal/tarot"
)

// knownTravelers lists registered usernames in name order.
func knownTravelers(data *store.DataService) []string {
	users := data.AllUsers()
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return names
}

func newHistoryCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "history <username>",
		Short: "List a traveler's past readings",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			cfg, err := flags.load()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			data, err := store.NewDataService(cfg.DataDir(), output.NewNopLogger())
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			var names []string
			for _, name := range knownTravelers(data) {
				if strings.HasPrefix(strings.ToLower(name), strings.ToLower(toComplete)) {
					names = append(names, name)
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}

			data, err := store.NewDataService(cfg.DataDir(), output.NewNopLogger())
			if err != nil {
				return err
			}

			user, ok := data.GetUser(args[0])
			if !ok {
				notFound := errors.New(errors.UserNotFound, "No such traveler").
					WithDetails(fmt.Sprintf("Username: %s", args[0]))
				if names := knownTravelers(data); len(names) > 0 {
					return notFound.WithSuggestion("Known travelers: " + strings.Join(names, ", "))
				}
				return notFound.WithSuggestion("No travelers have registered yet")
			}

			f := output.NewFormatter(cmd.OutOrStdout())
			f.Header(fmt.Sprintf("Readings of %s", user.Username))

			readings := data.UserReadings(user.ID)
			if len(readings) == 0 {
				f.Info("No readings recorded yet")
				return nil
			}

			spreads := tarot.NewSpreadService()
			table := f.Table()
			table.Headers("Date", "Spread", "Cards", "Question")
			for _, r := range readings {
				name := string(r.Type)
				if spread, ok := spreads.Lookup(r.Type); ok {
					name = spread.Name
				}
				labels := make([]string, len(r.Cards))
				for i, c := range r.Cards {
					labels[i] = c.Label()
				}
				table.Row(r.Timestamp.Local().Format("2006-01-02 15:04"), name, strings.Join(labels, ", "), r.Question)
			}
			table.Print()
			return nil
		},
	}
}
