package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"pickem-tracker/internal/api"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/service"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <event-id>",
	Short: "Show the tournament bracket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := parseEventID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
		defer cancel()

		var (
			cfg       *config.Config
			client    *api.Client
			reconcile *service.ReconcileService
		)
		stop, err := runApp(ctx, &cfg, &client, &reconcile)
		if err != nil {
			return err
		}
		defer stop()

		layout, err := client.GetTournamentLayout(ctx, eventID)
		if err != nil {
			return err
		}

		enriched := enrichBestEffort(ctx, cfg, client, reconcile, eventID, *layout)
		printLayout(cmd, enriched)
		return nil
	},
}

// enrichBestEffort resolves team names when credentials and inventory
// are available; without them the placeholder layout is shown as-is.
func enrichBestEffort(ctx context.Context, cfg *config.Config, client *api.Client, reconcile *service.ReconcileService, eventID int, layout domain.TournamentLayout) domain.TournamentLayout {
	auth, err := userAuth(cfg, eventID)
	if err != nil {
		return layout
	}

	items, err := client.GetTournamentItems(ctx, auth)
	if err != nil {
		items = &domain.TournamentItems{}
	}
	inventory, err := client.GetInventory(ctx, auth.SteamID)
	if err != nil {
		inventory = &domain.SteamInventory{}
	}

	return reconcile.EnrichLayout(layout, *items, *inventory)
}

func printLayout(cmd *cobra.Command, layout domain.TournamentLayout) {
	cmd.Printf("\nTournament Bracket\n")

	for _, section := range layout.Sections {
		cmd.Printf("\n=== %s ===\n", section.Name)

		var open, closed []domain.MatchGroup
		for _, group := range section.Groups {
			if group.PicksAllowed {
				open = append(open, group)
			} else {
				closed = append(closed, group)
			}
		}

		if len(open) > 0 {
			cmd.Printf("\n  Open for predictions (%d matches):\n", len(open))
			for _, group := range open {
				cmd.Printf("    * %s (%d pts)\n", group.Name, group.PointsPerPick)
				if len(group.Teams) > 0 {
					names := make([]string, 0, len(group.Teams))
					for _, team := range group.Teams {
						names = append(names, team.Name)
					}
					cmd.Printf("      %s\n", strings.Join(names, " vs "))
				}
			}
		}

		if len(closed) > 0 {
			cmd.Printf("\n  Locked/Completed (%d matches):\n", len(closed))
			for _, group := range closed {
				status := "locked"
				result := ""
				if winners := winnerNames(group); len(winners) > 0 {
					status = "done"
					result = " -> " + strings.Join(winners, ", ")
				}
				cmd.Printf("    [%s] %s%s\n", status, group.Name, result)
			}
		}
	}
	cmd.Println()
}

// winnerNames maps the result's winning IDs back to team names.
func winnerNames(group domain.MatchGroup) []string {
	if len(group.Picks) == 0 {
		return nil
	}

	winnerIDs := make(map[int]bool)
	for _, pick := range group.Picks {
		for _, id := range pick.PickIDs {
			winnerIDs[id] = true
		}
	}

	var names []string
	for _, team := range group.Teams {
		if winnerIDs[team.PickID] {
			names = append(names, team.Name)
		}
	}
	return names
}
