package cli

import (
	"context"

	"github.com/spf13/cobra"

	"pickem-tracker/internal/api"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/market"
)

var itemsCmd = &cobra.Command{
	Use:   "items <event-id>",
	Short: "List your claimable tournament items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := parseEventID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
		defer cancel()

		var (
			cfg    *config.Config
			client *api.Client
			names  market.TournamentNames
		)
		stop, err := runApp(ctx, &cfg, &client, &names)
		if err != nil {
			return err
		}
		defer stop()

		auth, err := userAuth(cfg, eventID)
		if err != nil {
			return err
		}

		items, err := client.GetTournamentItems(ctx, auth)
		if err != nil {
			return err
		}

		cmd.Printf("\nTournament Items (%s)\n\n", names.Name(eventID))
		if len(items.Items) == 0 {
			cmd.Println("  No claimable items. Buy stickers on the community market:")
			cmd.Printf("  %s\n\n", market.BuildURL(names, market.URLParams{
				Type:         domain.ItemTypeTeam,
				TeamID:       1,
				TournamentID: eventID,
			}))
			return nil
		}

		for _, item := range items.Items {
			switch item.Type {
			case domain.ItemTypeTeam:
				cmd.Printf("  team   %-6d item %s\n", item.TeamID, item.ItemID)
			case domain.ItemTypePlayer:
				cmd.Printf("  player %-6d item %s\n", item.PlayerID, item.ItemID)
			}
		}
		cmd.Println()
		return nil
	},
}
