package service

import (
	"math"

	"github.com/rs/zerolog"

	"pickem-tracker/internal/domain"
)

// TierThreshold is one band of the coin ladder: the tier earned at or
// above MinPoints.
type TierThreshold struct {
	Tier      domain.CoinTier
	MinPoints int
}

// TierLadder is an ascending list of bands. Cut points vary per
// tournament; these defaults match recent majors.
type TierLadder []TierThreshold

func DefaultTierLadder() TierLadder {
	return TierLadder{
		{Tier: domain.TierBronze, MinPoints: 0},
		{Tier: domain.TierSilver, MinPoints: 50},
		{Tier: domain.TierGold, MinPoints: 75},
		{Tier: domain.TierDiamond, MinPoints: 100},
	}
}

type ScoreService struct {
	tiers  TierLadder
	logger zerolog.Logger
}

func NewScoreService(tiers TierLadder, logger zerolog.Logger) *ScoreService {
	if len(tiers) == 0 {
		tiers = DefaultTierLadder()
	}
	return &ScoreService{tiers: tiers, logger: logger}
}

// CalculateBracketScore computes earned points, correct-prediction count
// and possible points for layout against predictions. Groups without an
// authoritative result contribute nothing; resolved groups count toward
// possible points whether or not the user predicted them.
func (s *ScoreService) CalculateBracketScore(layout domain.TournamentLayout, predictions domain.UserPredictions) domain.BracketScore {
	// first prediction per group wins when upstream hands back duplicates
	predByGroup := make(map[int]int, len(predictions.Predictions))
	for _, p := range predictions.Predictions {
		if _, ok := predByGroup[p.GroupID]; !ok {
			predByGroup[p.GroupID] = p.Pick
		}
	}

	score := domain.BracketScore{}

	for _, section := range layout.Sections {
		sectionScore := domain.SectionScore{
			SectionID:   section.SectionID,
			SectionName: section.Name,
		}

		for _, group := range section.Groups {
			if len(group.Picks) == 0 {
				continue
			}

			score.PossiblePoints += group.PointsPerPick
			sectionScore.TotalPicks++

			pick, ok := predByGroup[group.GroupID]
			if !ok {
				continue
			}

			if pickWon(group.Picks, pick) {
				score.TotalPoints += group.PointsPerPick
				score.CorrectPredictions++
				sectionScore.Points += group.PointsPerPick
				sectionScore.CorrectPicks++
			}
		}

		if sectionScore.TotalPicks > 0 {
			score.SectionScores = append(score.SectionScores, sectionScore)
		}
	}

	s.logger.Debug().
		Int("total_points", score.TotalPoints).
		Int("correct", score.CorrectPredictions).
		Int("possible_points", score.PossiblePoints).
		Int("sections", len(score.SectionScores)).
		Msg("bracket score calculated")

	return score
}

// pickWon checks the predicted ID against the union of winning IDs
// across all result slots.
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

// CoinTier classifies total points into a band of the ladder.
func (s *ScoreService) CoinTier(points int) domain.CoinTier {
	tier := s.tiers[0].Tier
	for _, t := range s.tiers {
		if points >= t.MinPoints {
			tier = t.Tier
		}
	}
	return tier
}

// NextTier names the next band up and the points still needed to reach it.
type NextTier struct {
	Tier         domain.CoinTier
	PointsNeeded int
}

// PointsToNextTier returns nil when points already sit in the top band.
func (s *ScoreService) PointsToNextTier(points int) *NextTier {
	for _, t := range s.tiers {
		if points < t.MinPoints {
			return &NextTier{Tier: t.Tier, PointsNeeded: t.MinPoints - points}
		}
	}
	return nil
}

// AccuracyPercentage is earned over possible, rounded to whole percent.
// Zero possible points yields 0, not an error.
func (s *ScoreService) AccuracyPercentage(score domain.BracketScore) int {
	if score.PossiblePoints == 0 {
		return 0
	}
	return int(math.Round(float64(score.TotalPoints) / float64(score.PossiblePoints) * 100))
}
