package synthesis

// Verdict is the final suitability outcome. It is a bounded, auditable
// classification for a human reviewer to approve or override, not a
// diagnosis.
type Verdict string

const (
	VerdictRecommended      Verdict = "recommended"
	VerdictWithRestrictions Verdict = "recommended_with_restrictions"
	VerdictNotRecommended   Verdict = "not_recommended"
)

// Recommendation is the one-time synthesis of scale risks and biographical
// flags. Factor lists are emitted critical-before-warning, each in fixed
// category order, so recomputation from the same inputs is byte-identical.
type Recommendation struct {
	Verdict         Verdict  `json:"verdict"`
	CriticalFactors []string `json:"critical_factors"`
	WarningFactors  []string `json:"warning_factors"`
}

// Factor label constants. Categories appear in this order.
const (
	FactorSuicidal      = "Suicidal factors"
	FactorUnwillingness = "Unwillingness to serve"
	FactorHighRiskScale = "High psychological risk" // suffixed with ": <scale>"
	FactorExtremism     = "Extremism risk indicators"

	FactorDependencyAlcohol  = "dependency: alcohol"
	FactorDependencyDrugs    = "dependency: drugs"
	FactorDependencyGambling = "dependency: gambling"
	FactorFinancial          = "Outstanding financial obligations"
	FactorHiddenHealth       = "Undisclosed health facts"
)
