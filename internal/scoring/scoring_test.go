package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psyscreen/internal/bank"
	dErrors "psyscreen/pkg/domain-errors"
)

func militaryBank() *bank.Bank {
	return bank.ForProfile(bank.ProfileMilitary)
}

func TestScoreAggregatesOnlyOwnScale(t *testing.T) {
	b := militaryBank()
	responses := map[string]int{
		"ag1": 5, "ag2": 4, "ag3": 1, // aggression screening
		"is1": 5, "is2": 5, "is3": 5, // isolation, must not leak in
	}

	r, err := Score(b, bank.ScaleAggression, responses)
	require.NoError(t, err)

	assert.Equal(t, 10, r.RawScore)
	assert.Equal(t, 3, r.AnsweredCount)
	assert.Equal(t, 2, r.PositiveCount)
	assert.Equal(t, 15, r.MaxPossible)
	assert.InDelta(t, 66.67, r.Percentage, 0.01)
}

func TestScoreTierFiltersByTier(t *testing.T) {
	b := militaryBank()
	responses := map[string]int{
		"ag1": 5, "ag2": 5, "ag3": 5, // screening
		"ag_med1": 1, "ag_med2": 1, "ag_med3": 1, "ag_med4": 1, "ag_med5": 1, // medium
	}

	med, err := ScoreTier(b, bank.ScaleAggression, bank.TierMedium, responses)
	require.NoError(t, err)
	assert.Equal(t, 5, med.RawScore)
	assert.Equal(t, 5, med.AnsweredCount)
	assert.Equal(t, 0, med.PositiveCount)

	all, err := Score(b, bank.ScaleAggression, responses)
	require.NoError(t, err)
	assert.Equal(t, 20, all.RawScore)
	assert.Equal(t, 8, all.AnsweredCount)
}

func TestScoreNoAnswersIsZeroValued(t *testing.T) {
	b := militaryBank()
	r, err := Score(b, bank.ScaleSomatic, map[string]int{})
	require.NoError(t, err)

	assert.Zero(t, r.RawScore)
	assert.Zero(t, r.AnsweredCount)
	assert.Zero(t, r.MaxPossible)
	assert.Zero(t, r.Percentage)
	assert.Equal(t, RiskLow, r.Tier)
}

func TestScoreUnknownScale(t *testing.T) {
	b := bank.ForProfile(bank.ProfileCivilian)
	_, err := Score(b, bank.ScaleMilitary, map[string]int{})
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
}

func TestScoreIgnoresForeignQuestionIDs(t *testing.T) {
	b := militaryBank()
	r, err := Score(b, bank.ScaleAggression, map[string]int{"ag1": 3, "bogus": 5})
	require.NoError(t, err)
	assert.Equal(t, 3, r.RawScore)
	assert.Equal(t, 1, r.AnsweredCount)
}

func TestScoreIsIdempotent(t *testing.T) {
	b := militaryBank()
	responses := map[string]int{"anx1": 4, "anx2": 2, "anx3": 5}

	first, err := Score(b, bank.ScaleAnxiety, responses)
	require.NoError(t, err)
	second, err := Score(b, bank.ScaleAnxiety, responses)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
