// Package synthesis combines classified scale risks with biographical answers
// into the final recommendation. This is pure domain logic - no I/O, no side
// effects; the escalation engine calls it exactly once, when no scale remains
// pending.
package synthesis

import (
	"psyscreen/internal/questionnaire"
	"psyscreen/internal/scoring"
)

// Synthesize applies the verdict rule chain. Rule priority:
//  1. Critical factors force not_recommended.
//  2. Warning factors force recommended_with_restrictions.
//  3. Otherwise recommended.
//
// results must be the final per-scale classifications in scale declaration
// order (the sincerity validity check, if present, is skipped). answers is
// the flat biographical record.
func Synthesize(results []scoring.ScaleResult, answers questionnaire.Answers) Recommendation {
	critical := criticalFactors(results, answers)
	warnings := warningFactors(answers)

	verdict := VerdictRecommended
	switch {
	case len(critical) > 0:
		verdict = VerdictNotRecommended
	case len(warnings) > 0:
		verdict = VerdictWithRestrictions
	}

	return Recommendation{
		Verdict:         verdict,
		CriticalFactors: critical,
		WarningFactors:  warnings,
	}
}

func criticalFactors(results []scoring.ScaleResult, a questionnaire.Answers) []string {
	factors := []string{}

	if a.Yes("personal_suicides") || a.Yes("family_suicides") {
		factors = append(factors, FactorSuicidal)
	}
	if a.No("want_serve") {
		factors = append(factors, FactorUnwillingness)
	}
	for _, r := range results {
		if r.Tier == scoring.RiskHigh {
			factors = append(factors, FactorHighRiskScale+": "+string(r.Scale))
		}
	}
	if extremismIndicated(a) {
		factors = append(factors, FactorExtremism)
	}

	return factors
}

// extremismIndicated is the radicalization heuristic: a named spiritual
// mentor, near-daily attendance, and withdrawal from communal events must
// all hold.
func extremismIndicated(a questionnaire.Answers) bool {
	hasTeacher := a.NonEmpty("religion_teachers")
	attendance := a.Get("religious_attendance")
	frequent := attendance == questionnaire.AttendanceDaily ||
		attendance == questionnaire.AttendanceSeveralWeekly
	withdrawn := a.No("social_events")
	return hasTeacher && frequent && withdrawn
}

func warningFactors(a questionnaire.Answers) []string {
	factors := []string{}

	if a.Yes("family_alcoholism") || a.Yes("personal_alcoholism") {
		factors = append(factors, FactorDependencyAlcohol)
	}
	if a.Yes("family_drugs") || a.Yes("personal_drugs") {
		factors = append(factors, FactorDependencyDrugs)
	}
	if a.Yes("personal_gambling") || a.Yes("betting") {
		factors = append(factors, FactorDependencyGambling)
	}
	if a.NonEmpty("credits") {
		factors = append(factors, FactorFinancial)
	}
	if a.NonEmpty("hidden_health_facts") || a.No("medical_examination") {
		factors = append(factors, FactorHiddenHealth)
	}

	return factors
}
