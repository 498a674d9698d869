// Package scoring aggregates answers into per-scale results and classifies
// them into risk tiers. Everything here is pure: same responses in, same
// result out, regardless of submission order.
package scoring

import (
	"psyscreen/internal/bank"
)

// PositiveAnswerValue is the lowest answer value counted as agreement.
// Answers use a 1..5 scale; 4 and 5 are positive.
const PositiveAnswerValue = 4

// RiskTier is the classification outcome for a scale.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"

	// Sincerity outcomes. The validity check never maps to a risk tier.
	ValidityOK  RiskTier = "valid"
	ValidityLow RiskTier = "low_validity"
)

// ScaleResult is the derived score for one scale over a set of answers.
type ScaleResult struct {
	Scale         bank.ScaleID `json:"scale"`
	RawScore      int          `json:"raw_score"`
	AnsweredCount int          `json:"answered_count"`
	PositiveCount int          `json:"positive_count"`
	MaxPossible   int          `json:"max_possible"`
	Percentage    float64      `json:"percentage"`
	Tier          RiskTier     `json:"tier"`
}

// Score aggregates every answer belonging to the scale, across all tiers.
// Membership is resolved via the bank, never by id naming convention.
// A scale with no matching answers yields the zero result with tier low so
// downstream synthesis stays total.
func Score(b *bank.Bank, scale bank.ScaleID, responses map[string]int) (ScaleResult, error) {
	return score(b, scale, "", responses)
}

// ScoreTier aggregates only the answers belonging to the scale at the given
// tier. The escalation policy classifies each deep-dive pass on its own
// tier's items.
func ScoreTier(b *bank.Bank, scale bank.ScaleID, tier bank.Tier, responses map[string]int) (ScaleResult, error) {
	return score(b, scale, tier, responses)
}

func score(b *bank.Bank, scale bank.ScaleID, tier bank.Tier, responses map[string]int) (ScaleResult, error) {
	if !b.HasScale(scale) {
		_, err := b.QuestionsForTier(scale, bank.TierScreening)
		return ScaleResult{}, err
	}

	result := ScaleResult{Scale: scale, Tier: RiskLow}
	for id, value := range responses {
		q, err := b.QuestionByID(id)
		if err != nil {
			continue // answers for other banks/profiles are not ours to score
		}
		if q.Scale != scale {
			continue
		}
		if tier != "" && q.Tier != tier {
			continue
		}
		result.RawScore += value
		result.AnsweredCount++
		if value >= PositiveAnswerValue {
			result.PositiveCount++
		}
	}

	result.MaxPossible = result.AnsweredCount * 5
	if result.MaxPossible > 0 {
		result.Percentage = float64(result.RawScore) / float64(result.MaxPossible) * 100
	}
	return result, nil
}
