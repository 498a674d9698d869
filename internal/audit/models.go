package audit

import (
	"time"

	"github.com/google/uuid"
)

// Actions recorded on the assessment trail.
const (
	ActionSessionStarted    = "session_started"
	ActionQuestionnaireDone = "questionnaire_completed"
	ActionStageAdvanced     = "stage_advanced"
	ActionSincerityFlagged  = "sincerity_flagged"
	ActionSincerityIgnored  = "sincerity_ignored"
	ActionSessionRestarted  = "session_restarted"
	ActionCompleted         = "assessment_completed"
)

// Event is emitted from the assessment flow to capture key transitions.
// Kept transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID uuid.UUID `json:"session_id"`
	Profile   string    `json:"profile"`
	Action    string    `json:"action"`
	Stage     string    `json:"stage"`
	Verdict   string    `json:"verdict,omitempty"`
}
