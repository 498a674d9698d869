package report

import (
	"time"

	"github.com/google/uuid"

	"psyscreen/internal/scoring"
)

// ScaleEntry is one scale's final numbers with its display name, so
// consumers render results without re-deriving scoring logic.
type ScaleEntry struct {
	Scale         string           `json:"scale"`
	DisplayName   string           `json:"display_name"`
	Tier          scoring.RiskTier `json:"tier"`
	RawScore      int              `json:"raw_score"`
	MaxPossible   int              `json:"max_possible"`
	Percentage    float64          `json:"percentage"`
	PositiveCount int              `json:"positive_count"`
	AnsweredCount int              `json:"answered_count"`
}

// Record is the structured export for one completed assessment: personal
// info echo, per-scale results and the synthesized recommendation.
type Record struct {
	SessionID        uuid.UUID         `json:"session_id"`
	Profile          string            `json:"profile"`
	CreatedAt        time.Time         `json:"created_at"`
	CompletedAt      time.Time         `json:"completed_at"`
	FullName         string            `json:"full_name,omitempty"`
	BirthDate        string            `json:"birth_date,omitempty"`
	Biographical     map[string]string `json:"biographical"`
	Scales           []ScaleEntry      `json:"scales"`
	SincerityIgnored bool              `json:"sincerity_ignored"`
	Verdict          string            `json:"verdict"`
	CriticalFactors  []string          `json:"critical_factors"`
	WarningFactors   []string          `json:"warning_factors"`
}
