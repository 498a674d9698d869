package report

import (
	"time"

	"psyscreen/internal/assessment"
	"psyscreen/internal/bank"
	dErrors "psyscreen/pkg/domain-errors"
)

// Build flattens a finished session into its export record. Scales appear in
// catalogue order, sincerity last.
func Build(s *assessment.Session, b *bank.Bank, completedAt time.Time) (Record, error) {
	if s.Stage != assessment.StageResults {
		return Record{}, dErrors.New(dErrors.CodeInvalidState, "assessment is not finished")
	}

	scales := make([]ScaleEntry, 0, len(s.Results))
	for _, scale := range append(b.RiskScales(), bank.ScaleSincerity) {
		r, ok := s.Results[scale]
		if !ok {
			continue
		}
		scales = append(scales, ScaleEntry{
			Scale:         string(scale),
			DisplayName:   b.ScaleName(scale),
			Tier:          r.Tier,
			RawScore:      r.RawScore,
			MaxPossible:   r.MaxPossible,
			Percentage:    r.Percentage,
			PositiveCount: r.PositiveCount,
			AnsweredCount: r.AnsweredCount,
		})
	}

	return Record{
		SessionID:        s.ID,
		Profile:          string(s.Profile),
		CreatedAt:        s.CreatedAt,
		CompletedAt:      completedAt,
		FullName:         s.Biographical.Get("full_name"),
		BirthDate:        s.Biographical.Get("birth_date"),
		Biographical:     s.Biographical.Clone(),
		Scales:           scales,
		SincerityIgnored: s.SincerityIgnored,
		Verdict:          string(s.Recommendation.Verdict),
		CriticalFactors:  append([]string{}, s.Recommendation.CriticalFactors...),
		WarningFactors:   append([]string{}, s.Recommendation.WarningFactors...),
	}, nil
}
