package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pickem-tracker/internal/api"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/service"
)

var scoreCmd = &cobra.Command{
	Use:   "score <event-id>",
	Short: "Calculate your current Pick'Em score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := parseEventID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), constants.RequestTimeout)
		defer cancel()

		var (
			cfg      *config.Config
			client   *api.Client
			scoreSvc *service.ScoreService
		)
		stop, err := runApp(ctx, &cfg, &client, &scoreSvc)
		if err != nil {
			return err
		}
		defer stop()

		auth, err := userAuth(cfg, eventID)
		if err != nil {
			return err
		}

		var (
			layout      *domain.TournamentLayout
			predictions *domain.UserPredictions
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			layout, err = client.GetTournamentLayout(gctx, eventID)
			return err
		})
		g.Go(func() error {
			var err error
			predictions, err = client.GetPredictions(gctx, auth)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		score := scoreSvc.CalculateBracketScore(*layout, *predictions)
		printScore(cmd, scoreSvc, score)
		return nil
	},
}

func printScore(cmd *cobra.Command, svc *service.ScoreService, score domain.BracketScore) {
	cmd.Printf("\nPick'Em Score\n\n")

	for _, section := range score.SectionScores {
		cmd.Printf("  %-24s %2d pts  (%d/%d correct)\n",
			section.SectionName, section.Points, section.CorrectPicks, section.TotalPicks)
	}

	cmd.Printf("\n  Total:    %d / %d points\n", score.TotalPoints, score.PossiblePoints)
	cmd.Printf("  Correct:  %d predictions\n", score.CorrectPredictions)
	cmd.Printf("  Accuracy: %d%%\n", svc.AccuracyPercentage(score))
	cmd.Printf("  Tier:     %s\n", svc.CoinTier(score.TotalPoints))

	if next := svc.PointsToNextTier(score.TotalPoints); next != nil {
		cmd.Printf("  Next:     %d pts to %s\n", next.PointsNeeded, next.Tier)
	}
	cmd.Println()
}
