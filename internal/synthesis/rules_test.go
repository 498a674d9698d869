package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"psyscreen/internal/bank"
	"psyscreen/internal/questionnaire"
	"psyscreen/internal/scoring"
)

func allLow() []scoring.ScaleResult {
	var out []scoring.ScaleResult
	for _, s := range bank.ForProfile(bank.ProfileMilitary).RiskScales() {
		out = append(out, scoring.ScaleResult{Scale: s, Tier: scoring.RiskLow})
	}
	return out
}

func TestSuicidalFlagForcesNotRecommended(t *testing.T) {
	answers := questionnaire.Answers{"personal_suicides": questionnaire.AnswerYes}

	rec := Synthesize(allLow(), answers)

	assert.Equal(t, VerdictNotRecommended, rec.Verdict)
	assert.Equal(t, []string{FactorSuicidal}, rec.CriticalFactors)
	assert.Empty(t, rec.WarningFactors)
}

func TestFamilySuicidesAlsoCritical(t *testing.T) {
	rec := Synthesize(allLow(), questionnaire.Answers{"family_suicides": questionnaire.AnswerYes})
	assert.Equal(t, VerdictNotRecommended, rec.Verdict)
	assert.Contains(t, rec.CriticalFactors, FactorSuicidal)
}

func TestUnwillingnessToServe(t *testing.T) {
	rec := Synthesize(allLow(), questionnaire.Answers{"want_serve": questionnaire.AnswerNo})
	assert.Equal(t, VerdictNotRecommended, rec.Verdict)
	assert.Equal(t, []string{FactorUnwillingness}, rec.CriticalFactors)
}

func TestHighScaleForcesNotRecommended(t *testing.T) {
	results := allLow()
	results[2].Tier = scoring.RiskHigh // somatic

	rec := Synthesize(results, questionnaire.Answers{})

	assert.Equal(t, VerdictNotRecommended, rec.Verdict)
	assert.Equal(t, []string{FactorHighRiskScale + ": somatic"}, rec.CriticalFactors)
}

func TestExtremismHeuristicNeedsAllThreeSignals(t *testing.T) {
	base := questionnaire.Answers{
		"religion_teachers":    "устаз Н.",
		"religious_attendance": questionnaire.AttendanceDaily,
		"social_events":        questionnaire.AnswerNo,
	}

	rec := Synthesize(allLow(), base)
	assert.Equal(t, VerdictNotRecommended, rec.Verdict)
	assert.Equal(t, []string{FactorExtremism}, rec.CriticalFactors)

	t.Run("no teacher", func(t *testing.T) {
		a := base.Clone()
		a["religion_teachers"] = "  "
		assert.Empty(t, Synthesize(allLow(), a).CriticalFactors)
	})
	t.Run("infrequent attendance", func(t *testing.T) {
		a := base.Clone()
		a["religious_attendance"] = questionnaire.AttendanceWeekly
		assert.Empty(t, Synthesize(allLow(), a).CriticalFactors)
	})
	t.Run("attends social events", func(t *testing.T) {
		a := base.Clone()
		a["social_events"] = questionnaire.AnswerYes
		assert.Empty(t, Synthesize(allLow(), a).CriticalFactors)
	})
}

func TestDependencyFlagForcesRestrictions(t *testing.T) {
	answers := questionnaire.Answers{"family_alcoholism": questionnaire.AnswerYes}

	rec := Synthesize(allLow(), answers)

	assert.Equal(t, VerdictWithRestrictions, rec.Verdict)
	assert.Equal(t, []string{FactorDependencyAlcohol}, rec.WarningFactors)
	assert.Empty(t, rec.CriticalFactors)
}

func TestWarningCategoriesInFixedOrder(t *testing.T) {
	answers := questionnaire.Answers{
		"hidden_health_facts": "скрытый диагноз",
		"credits":             "2 млн тенге",
		"personal_gambling":   questionnaire.AnswerYes,
		"family_drugs":        questionnaire.AnswerYes,
		"personal_alcoholism": questionnaire.AnswerYes,
	}

	rec := Synthesize(allLow(), answers)

	assert.Equal(t, VerdictWithRestrictions, rec.Verdict)
	assert.Equal(t, []string{
		FactorDependencyAlcohol,
		FactorDependencyDrugs,
		FactorDependencyGambling,
		FactorFinancial,
		FactorHiddenHealth,
	}, rec.WarningFactors)
}

func TestWarningsRecordedAlongsideCritical(t *testing.T) {
	answers := questionnaire.Answers{
		"personal_suicides": questionnaire.AnswerYes,
		"family_alcoholism": questionnaire.AnswerYes,
	}

	rec := Synthesize(allLow(), answers)

	// Verdict is driven by the critical factor; the warning stays in the
	// report.
	assert.Equal(t, VerdictNotRecommended, rec.Verdict)
	assert.Equal(t, []string{FactorSuicidal}, rec.CriticalFactors)
	assert.Equal(t, []string{FactorDependencyAlcohol}, rec.WarningFactors)
}

func TestCleanRecordIsRecommended(t *testing.T) {
	rec := Synthesize(allLow(), questionnaire.Answers{
		"want_serve":          questionnaire.AnswerYes,
		"medical_examination": questionnaire.AnswerYes,
	})

	assert.Equal(t, VerdictRecommended, rec.Verdict)
	assert.Empty(t, rec.CriticalFactors)
	assert.Empty(t, rec.WarningFactors)
}

func TestMediumScalesAloneDoNotRestrict(t *testing.T) {
	results := allLow()
	results[0].Tier = scoring.RiskMedium

	rec := Synthesize(results, questionnaire.Answers{"medical_examination": questionnaire.AnswerYes})

	assert.Equal(t, VerdictRecommended, rec.Verdict)
}

func TestSynthesisIsDeterministic(t *testing.T) {
	answers := questionnaire.Answers{
		"personal_suicides": questionnaire.AnswerYes,
		"credits":           "займ",
	}
	results := allLow()
	results[1].Tier = scoring.RiskHigh

	first := Synthesize(results, answers)
	second := Synthesize(results, answers)
	assert.Equal(t, first, second)
}
