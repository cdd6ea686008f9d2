package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pickem-tracker/internal/api"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
)

var predictIndex int

var predictCmd = &cobra.Command{
	Use:   "predict <event-id> <section-id> <group-id> <pick-id> <item-id>",
	Short: "Submit a prediction for a match group",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := parseEventID(args[0])
		if err != nil {
			return err
		}
		ids := make([]int, 3)
		labels := []string{"section ID", "group ID", "pick ID"}
		for i, arg := range args[1:4] {
			ids[i], err = strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("%s must be a number, got %q", labels[i], arg)
			}
		}
		itemID := args[4]

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

		result, err := client.UploadPrediction(ctx, domain.UploadPrediction{
			UserAuth:  auth,
			SectionID: ids[0],
			GroupID:   ids[1],
			Index:     predictIndex,
			PickID:    ids[2],
			ItemID:    itemID,
		})
		if err != nil {
			return err
		}

		cmd.Printf("\nPrediction submitted (item %s)\n\n", result.ItemID)
		return nil
	},
}

func init() {
	predictCmd.Flags().IntVar(&predictIndex, "index", 0, "pick slot index (0 is the first slot)")
}
