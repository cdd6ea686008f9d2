package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pickem-tracker/internal/api"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
)

var fantasyPicks []string

var fantasyCmd = &cobra.Command{
	Use:   "fantasy <event-id>",
	Short: "Show your fantasy lineup",
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
		)
		stop, err := runApp(ctx, &cfg, &client)
		if err != nil {
			return err
		}
		defer stop()

		auth, err := userAuth(cfg, eventID)
		if err != nil {
			return err
		}

		lineup, err := client.GetFantasyLineup(ctx, auth)
		if err != nil {
			return err
		}

		cmd.Printf("\nFantasy Lineup\n\n")
		if len(lineup.Teams) == 0 {
			cmd.Println("  No lineup submitted yet.")
		}
		for _, team := range lineup.Teams {
			picks := make([]string, 0, len(team.Picks))
			for _, p := range team.Picks {
				picks = append(picks, strconv.Itoa(p))
			}
			cmd.Printf("  section %-4d players: %s\n", team.SectionID, strings.Join(picks, ", "))
		}
		cmd.Println()
		return nil
	},
}

var fantasySetCmd = &cobra.Command{
	Use:   "set <event-id> <section-id>",
	Short: "Submit a five-player fantasy lineup",
	Long: `Submit a fantasy lineup. Pass five --pick flags, each formatted
as <pick-id>:<item-id>, one per player slot.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := parseEventID(args[0])
		if err != nil {
			return err
		}
		sectionID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("section ID must be a number, got %q", args[1])
		}

		lineup, err := parseLineup(fantasyPicks)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
		defer cancel()

		var (
			cfg    *config.Config
			client *api.Client
		)
		stop, err := runApp(ctx, &cfg, &client)
		if err != nil {
			return err
		}
		defer stop()

		auth, err := userAuth(cfg, eventID)
		if err != nil {
			return err
		}

		result, err := client.UploadFantasyLineup(ctx, domain.UploadLineup{
			UserAuth:  auth,
			SectionID: sectionID,
			Lineup:    lineup,
		})
		if err != nil {
			return err
		}

		cmd.Printf("\nLineup submitted (%d items consumed)\n\n", len(result.SlotItemIDs))
		return nil
	},
}

func parseLineup(picks []string) ([]domain.LineupEntry, error) {
	lineup := make([]domain.LineupEntry, 0, len(picks))
	for _, raw := range picks {
		pickPart, itemPart, ok := strings.Cut(raw, ":")
		if !ok {
			return nil, fmt.Errorf("pick %q must be formatted as <pick-id>:<item-id>", raw)
		}
		pickID, err := strconv.Atoi(pickPart)
		if err != nil {
			return nil, fmt.Errorf("pick ID in %q must be a number", raw)
		}
		lineup = append(lineup, domain.LineupEntry{PickID: pickID, ItemID: itemPart})
	}
	return lineup, nil
}

func init() {
	fantasySetCmd.Flags().StringArrayVar(&fantasyPicks, "pick", nil, "player pick as <pick-id>:<item-id> (repeat five times)")
	fantasyCmd.AddCommand(fantasySetCmd)
}
