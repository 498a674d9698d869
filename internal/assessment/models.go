package assessment

import (
	"time"

	"github.com/google/uuid"

	"psyscreen/internal/bank"
	"psyscreen/internal/questionnaire"
	"psyscreen/internal/scoring"
	"psyscreen/internal/synthesis"
)

// Stage is the lifecycle position of a session.
type Stage string

const (
	StageStart            Stage = "start"
	StageQuestionnaire    Stage = "questionnaire"
	StageScreening        Stage = "screening"
	StageSincerityWarning Stage = "sincerity_warning"
	StageMediumRisk       Stage = "medium_risk_assessment"
	StageHighRisk         Stage = "high_risk_assessment"
	StageResults          Stage = "results"
)

// Session is the aggregate root for one assessment. It is mutated only
// through Engine transitions and owned exclusively by the flow driving it;
// a restart replaces it wholesale rather than mutating mid-assessment state.
type Session struct {
	ID        uuid.UUID    `json:"id"`
	Profile   bank.Profile `json:"profile"`
	Stage     Stage        `json:"stage"`
	CreatedAt time.Time    `json:"created_at"`

	// Seed drives queue shuffling. Persisted so a reloaded session replays
	// identical item order.
	Seed     int64 `json:"seed"`
	Shuffles int   `json:"shuffles"`

	Responses    map[string]int        `json:"responses"`
	Biographical questionnaire.Answers `json:"biographical"`

	// Pending is the ordered question queue for the active stage. Its head
	// is the current prompt.
	Pending     []bank.Question `json:"pending"`
	ActiveScale bank.ScaleID    `json:"active_scale,omitempty"`
	ActiveTier  bank.Tier       `json:"active_tier,omitempty"`

	MediumQueue []bank.ScaleID `json:"medium_queue"`
	HighQueue   []bank.ScaleID `json:"high_queue"`
	Evaluated   []bank.ScaleID `json:"evaluated"`

	// Screening keeps the first-pass numbers for reporting; Results holds
	// the authoritative latest classification per scale.
	Screening map[bank.ScaleID]scoring.ScaleResult `json:"screening"`
	Results   map[bank.ScaleID]scoring.ScaleResult `json:"results"`

	// SincerityIgnored records that the participant proceeded despite a
	// low-validity flag; surfaced in results, never blocks scoring.
	SincerityIgnored bool `json:"sincerity_ignored"`

	Recommendation *synthesis.Recommendation `json:"recommendation,omitempty"`
}

// CurrentPrompt returns the next question to render, nil once the session
// reached results (or is not in a questioning stage).
func (s *Session) CurrentPrompt() *bank.Question {
	if len(s.Pending) == 0 {
		return nil
	}
	q := s.Pending[0]
	return &q
}

// IsEvaluated reports whether a scale finished its deep-dive evaluation.
func (s *Session) IsEvaluated(scale bank.ScaleID) bool {
	for _, e := range s.Evaluated {
		if e == scale {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Stores hand out clones so callers never share
// mutable state with the persisted session.
func (s *Session) Clone() *Session {
	out := *s

	out.Responses = make(map[string]int, len(s.Responses))
	for k, v := range s.Responses {
		out.Responses[k] = v
	}
	out.Biographical = s.Biographical.Clone()
	out.Pending = append([]bank.Question(nil), s.Pending...)
	out.MediumQueue = append([]bank.ScaleID(nil), s.MediumQueue...)
	out.HighQueue = append([]bank.ScaleID(nil), s.HighQueue...)
	out.Evaluated = append([]bank.ScaleID(nil), s.Evaluated...)

	out.Screening = make(map[bank.ScaleID]scoring.ScaleResult, len(s.Screening))
	for k, v := range s.Screening {
		out.Screening[k] = v
	}
	out.Results = make(map[bank.ScaleID]scoring.ScaleResult, len(s.Results))
	for k, v := range s.Results {
		out.Results[k] = v
	}

	if s.Recommendation != nil {
		rec := synthesis.Recommendation{
			Verdict:         s.Recommendation.Verdict,
			CriticalFactors: append([]string(nil), s.Recommendation.CriticalFactors...),
			WarningFactors:  append([]string(nil), s.Recommendation.WarningFactors...),
		}
		out.Recommendation = &rec
	}
	return &out
}

// OrderedResults returns the risk-scale results in bank declaration order,
// the shape the synthesizer expects.
func (s *Session) OrderedResults(b *bank.Bank) []scoring.ScaleResult {
	out := make([]scoring.ScaleResult, 0, len(s.Results))
	for _, scale := range b.RiskScales() {
		if r, ok := s.Results[scale]; ok {
			out = append(out, r)
		}
	}
	return out
}
