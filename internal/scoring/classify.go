package scoring

// Thresholds hold the classification cutoffs. The values are empirically
// chosen in the source methodology with no documented derivation; they are
// kept configurable pending domain-expert review rather than hard-coded.
type Thresholds struct {
	// ScreeningPositives: at screening a scale is medium when at least this
	// many of its (three) items are answered positively.
	ScreeningPositives int
	// FullPercent: a full-tier deep dive confirms high risk at or above this
	// percentage of the maximum score.
	FullPercent float64
	// SincerityHigh / SincerityLow: raw-score extremes that flag careless or
	// impression-managed responding.
	SincerityHigh int
	SincerityLow  int
}

// DefaultThresholds returns the source methodology's cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ScreeningPositives: 2,
		FullPercent:        70,
		SincerityHigh:      13,
		SincerityLow:       4,
	}
}

// ClassifyScreening maps a screening-tier result to low or medium. Screening
// sets are deliberately short, so a positive-answer count is used instead of
// a score band.
func (t Thresholds) ClassifyScreening(r ScaleResult) RiskTier {
	if r.PositiveCount >= t.ScreeningPositives {
		return RiskMedium
	}
	return RiskLow
}

// ClassifyMediumDeepDive decides whether a medium-tier pass escalates the
// scale to high. More than half the items answered positively confirms
// escalation.
func (t Thresholds) ClassifyMediumDeepDive(r ScaleResult) RiskTier {
	if 2*r.PositiveCount > r.AnsweredCount {
		return RiskHigh
	}
	return RiskMedium
}

// ClassifyFullDeepDive finalizes a scale after its full-tier pass.
func (t Thresholds) ClassifyFullDeepDive(r ScaleResult) RiskTier {
	if r.Percentage >= t.FullPercent {
		return RiskHigh
	}
	return RiskMedium
}

// ClassifySincerity flags raw-score extremes as low validity. Evaluated once,
// at screening only.
func (t Thresholds) ClassifySincerity(r ScaleResult) RiskTier {
	if r.RawScore >= t.SincerityHigh || r.RawScore <= t.SincerityLow {
		return ValidityLow
	}
	return ValidityOK
}
