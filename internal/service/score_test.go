package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickem-tracker/internal/domain"
)

func newScoreService() *ScoreService {
	return NewScoreService(nil, zerolog.Nop())
}

func testLayout() domain.TournamentLayout {
	return domain.TournamentLayout{
		Sections: []domain.TournamentSection{
			{
				SectionID: 1,
				Name:      "Challengers Stage",
				Groups: []domain.MatchGroup{
					{
						GroupID:       101,
						Name:          "Match 1",
						PointsPerPick: 1,
						Teams: []domain.Team{
							{PickID: 1, Name: "Team A"},
							{PickID: 2, Name: "Team B"},
						},
						Picks: []domain.Pick{{Index: 0, PickIDs: []int{1}}},
					},
					{
						GroupID:       102,
						Name:          "Match 2",
						PointsPerPick: 1,
						Teams: []domain.Team{
							{PickID: 3, Name: "Team C"},
							{PickID: 4, Name: "Team D"},
						},
						Picks: []domain.Pick{{Index: 0, PickIDs: []int{4}}},
					},
				},
			},
			{
				SectionID: 2,
				Name:      "Legends Stage",
				Groups: []domain.MatchGroup{
					{
						GroupID:       201,
						Name:          "Match 3",
						PointsPerPick: 2,
						Teams: []domain.Team{
							{PickID: 1, Name: "Team A"},
							{PickID: 4, Name: "Team D"},
						},
						Picks: []domain.Pick{{Index: 0, PickIDs: []int{1}}},
					},
				},
			},
		},
	}
}

func preds(pairs ...[2]int) domain.UserPredictions {
	out := domain.UserPredictions{}
	for _, p := range pairs {
		out.Predictions = append(out.Predictions, domain.Prediction{GroupID: p[0], Pick: p[1]})
	}
	return out
}

func TestCalculateBracketScoreAllCorrect(t *testing.T) {
	svc := newScoreService()

	score := svc.CalculateBracketScore(testLayout(), preds([2]int{101, 1}, [2]int{102, 4}, [2]int{201, 1}))

	assert.Equal(t, 4, score.TotalPoints)
	assert.Equal(t, 3, score.CorrectPredictions)
	assert.Equal(t, 4, score.PossiblePoints)
	require.Len(t, score.SectionScores, 2)
	assert.Equal(t, 2, score.SectionScores[0].Points)
	assert.Equal(t, 2, score.SectionScores[0].CorrectPicks)
	assert.Equal(t, 2, score.SectionScores[0].TotalPicks)
	assert.Equal(t, 2, score.SectionScores[1].Points)
	assert.Equal(t, 1, score.SectionScores[1].TotalPicks)
}

func TestCalculateBracketScoreAllWrong(t *testing.T) {
	svc := newScoreService()

	score := svc.CalculateBracketScore(testLayout(), preds([2]int{101, 2}, [2]int{102, 3}, [2]int{201, 4}))

	assert.Equal(t, 0, score.TotalPoints)
	assert.Equal(t, 0, score.CorrectPredictions)
	// possible points unchanged by prediction content
	assert.Equal(t, 4, score.PossiblePoints)
}

func TestCalculateBracketScoreMissingPredictions(t *testing.T) {
	svc := newScoreService()

	score := svc.CalculateBracketScore(testLayout(), preds([2]int{101, 1}))

	assert.Equal(t, 1, score.TotalPoints)
	assert.Equal(t, 1, score.CorrectPredictions)
	assert.Equal(t, 4, score.PossiblePoints)
}

func TestCalculateBracketScoreEmptyPredictions(t *testing.T) {
	svc := newScoreService()

	score := svc.CalculateBracketScore(testLayout(), domain.UserPredictions{})

	assert.Equal(t, 0, score.TotalPoints)
	assert.Equal(t, 0, score.CorrectPredictions)
	assert.Equal(t, 4, score.PossiblePoints)
}

func TestCalculateBracketScoreDuplicatePredictionsFirstWins(t *testing.T) {
	svc := newScoreService()

	score := svc.CalculateBracketScore(testLayout(), preds([2]int{101, 1}, [2]int{101, 2}))
	assert.Equal(t, 1, score.TotalPoints)

	score = svc.CalculateBracketScore(testLayout(), preds([2]int{101, 2}, [2]int{101, 1}))
	assert.Equal(t, 0, score.TotalPoints)
}

func TestCalculateBracketScoreUnresolvedGroupsExcluded(t *testing.T) {
	svc := newScoreService()

	layout := testLayout()
	// strip results from section 2 entirely
	layout.Sections[1].Groups[0].Picks = nil

	score := svc.CalculateBracketScore(layout, preds([2]int{201, 1}))

	assert.Equal(t, 0, score.TotalPoints)
	assert.Equal(t, 2, score.PossiblePoints)
	// sections with zero resolved groups are omitted
	require.Len(t, score.SectionScores, 1)
	assert.Equal(t, 1, score.SectionScores[0].SectionID)
}

func TestCalculateBracketScoreMultiSlotResult(t *testing.T) {
	svc := newScoreService()

	layout := domain.TournamentLayout{
		Sections: []domain.TournamentSection{
			{
				SectionID: 1,
				Name:      "Playoffs",
				Groups: []domain.MatchGroup{
					{
						GroupID:       301,
						PointsPerPick: 3,
						Picks: []domain.Pick{
							{Index: 0, PickIDs: []int{7}},
							{Index: 1, PickIDs: []int{9}},
						},
					},
				},
			},
		},
	}

	score := svc.CalculateBracketScore(layout, preds([2]int{301, 9}))
	assert.Equal(t, 3, score.TotalPoints)
	assert.Equal(t, 1, score.CorrectPredictions)
}

func TestCoinTier(t *testing.T) {
	svc := newScoreService()

	tests := []struct {
		points int
		want   domain.CoinTier
	}{
		{0, domain.TierBronze},
		{49, domain.TierBronze},
		{50, domain.TierSilver},
		{74, domain.TierSilver},
		{75, domain.TierGold},
		{99, domain.TierGold},
		{100, domain.TierDiamond},
		{150, domain.TierDiamond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.CoinTier(tt.points), "points=%d", tt.points)
	}
}

func TestPointsToNextTier(t *testing.T) {
	svc := newScoreService()

	assert.Nil(t, svc.PointsToNextTier(100))
	assert.Nil(t, svc.PointsToNextTier(150))

	next := svc.PointsToNextTier(75)
	require.NotNil(t, next)
	assert.Equal(t, domain.TierDiamond, next.Tier)
	assert.Equal(t, 25, next.PointsNeeded)

	next = svc.PointsToNextTier(50)
	require.NotNil(t, next)
	assert.Equal(t, domain.TierGold, next.Tier)
	assert.Equal(t, 25, next.PointsNeeded)

	next = svc.PointsToNextTier(0)
	require.NotNil(t, next)
	assert.Equal(t, domain.TierSilver, next.Tier)
	assert.Equal(t, 50, next.PointsNeeded)
}

func TestTierBoundaryConsistency(t *testing.T) {
	svc := newScoreService()

	// the gap always lands exactly on the next band's minimum
	for points := 0; points <= 120; points++ {
		next := svc.PointsToNextTier(points)
		if next == nil {
			assert.Equal(t, domain.TierDiamond, svc.CoinTier(points), "points=%d", points)
			continue
		}
		assert.Positive(t, next.PointsNeeded, "points=%d", points)
		assert.Equal(t, next.Tier, svc.CoinTier(points+next.PointsNeeded), "points=%d", points)
	}
}

func TestCustomTierLadder(t *testing.T) {
	svc := NewScoreService(TierLadder{
		{Tier: domain.TierBronze, MinPoints: 0},
		{Tier: domain.TierSilver, MinPoints: 10},
		{Tier: domain.TierGold, MinPoints: 20},
		{Tier: domain.TierDiamond, MinPoints: 30},
	}, zerolog.Nop())

	assert.Equal(t, domain.TierSilver, svc.CoinTier(15))
	next := svc.PointsToNextTier(15)
	require.NotNil(t, next)
	assert.Equal(t, domain.TierGold, next.Tier)
	assert.Equal(t, 5, next.PointsNeeded)
}

func TestAccuracyPercentage(t *testing.T) {
	svc := newScoreService()

	assert.Equal(t, 0, svc.AccuracyPercentage(domain.BracketScore{}))
	assert.Equal(t, 100, svc.AccuracyPercentage(domain.BracketScore{TotalPoints: 4, PossiblePoints: 4}))
	assert.Equal(t, 67, svc.AccuracyPercentage(domain.BracketScore{TotalPoints: 2, PossiblePoints: 3}))
	assert.Equal(t, 33, svc.AccuracyPercentage(domain.BracketScore{TotalPoints: 1, PossiblePoints: 3}))
}
