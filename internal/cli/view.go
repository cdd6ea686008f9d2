package cli

import (
	"context"

	"github.com/spf13/cobra"

	"pickem-tracker/internal/api"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/service"
)

var viewCmd = &cobra.Command{
	Use:   "view <event-id>",
	Short: "View your current predictions for a tournament",
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

		auth, err := userAuth(cfg, eventID)
		if err != nil {
			return err
		}

		layout, err := client.GetTournamentLayout(ctx, eventID)
		if err != nil {
			return err
		}
		predictions, err := client.GetPredictions(ctx, auth)
		if err != nil {
			return err
		}

		enriched := enrichBestEffort(ctx, cfg, client, reconcile, eventID, *layout)
		printPredictions(cmd, enriched, *predictions)
		return nil
	},
}

func printPredictions(cmd *cobra.Command, layout domain.TournamentLayout, predictions domain.UserPredictions) {
	picked := make(map[int]int, len(predictions.Predictions))
	for _, p := range predictions.Predictions {
		if _, ok := picked[p.GroupID]; !ok {
			picked[p.GroupID] = p.Pick
		}
	}

	cmd.Printf("\nYour Predictions\n")

	total := 0
	for _, section := range layout.Sections {
		headerShown := false
		for _, group := range section.Groups {
			pick, ok := picked[group.GroupID]
			if !ok {
				continue
			}
			if !headerShown {
				cmd.Printf("\n=== %s ===\n", section.Name)
				headerShown = true
			}
			total++

			marker := " "
			if len(group.Picks) > 0 {
				if pickWon(group.Picks, pick) {
					marker = "+"
				} else {
					marker = "x"
				}
			}
			cmd.Printf("  [%s] %-24s %s\n", marker, group.Name, teamName(group, pick))
		}
	}

	if total == 0 {
		cmd.Println("\n  No predictions submitted yet.")
	}
	cmd.Println()
}

func pickWon(picks []domain.Pick, predicted int) bool {
	for _, pick := range picks {
		for _, id := range pick.PickIDs {
			if id == predicted {
				return true
			}
		}
	}
	return false
}

func teamName(group domain.MatchGroup, pickID int) string {
	for _, team := range group.Teams {
		if team.PickID == pickID {
			return team.Name
		}
	}
	return "Unknown"
}
