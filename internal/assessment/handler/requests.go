package handler

import (
	"psyscreen/internal/questionnaire"
)

// StartRequest opens a new assessment session.
type StartRequest struct {
	Profile string `json:"profile"`

	// Seed pins question order; 0 randomizes. Used by proctoring tools to
	// replay a session.
	Seed int64 `json:"seed,omitempty"`
}

// QuestionnaireRequest submits one or more biographical sections.
type QuestionnaireRequest struct {
	Answers questionnaire.Answers `json:"answers"`
}

// AnswerRequest submits one psychometric answer.
type AnswerRequest struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
}

// SincerityRequest resolves a low-validity sincerity flag.
type SincerityRequest struct {
	Restart bool `json:"restart"`
}

// RestartRequest replaces the session.
type RestartRequest struct {
	PreserveBiographical bool `json:"preserve_biographical"`
}
