package handler

import (
	"psyscreen/internal/assessment"
	"psyscreen/internal/bank"
	"psyscreen/internal/questionnaire"
)

// StartResponse carries the new session and its bearer token.
type StartResponse struct {
	Session SessionResponse `json:"session"`
	Token   string          `json:"token"`
}

// PromptView is the current question. Scale membership is deliberately not
// exposed to the participant.
type PromptView struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	Remaining  int    `json:"remaining"`
}

// PromptResponse carries the current question, or a null prompt once the
// session has reached results and no further questions exist.
type PromptResponse struct {
	Stage  string      `json:"stage"`
	Prompt *PromptView `json:"prompt"`
}

// ScaleResultView is one scale's classified outcome.
type ScaleResultView struct {
	Scale       string  `json:"scale"`
	DisplayName string  `json:"display_name"`
	Tier        string  `json:"tier"`
	RawScore    int     `json:"raw_score"`
	MaxPossible int     `json:"max_possible"`
	Percentage  float64 `json:"percentage"`
}

// RecommendationView is the synthesized verdict.
type RecommendationView struct {
	Verdict         string   `json:"verdict"`
	CriticalFactors []string `json:"critical_factors"`
	WarningFactors  []string `json:"warning_factors"`
}

// SessionResponse is the stage-dependent session view.
type SessionResponse struct {
	ID      string `json:"id"`
	Profile string `json:"profile"`
	Stage   string `json:"stage"`

	// MissingFields lists required questionnaire fields still unanswered.
	// Present only while the questionnaire is open.
	MissingFields []string `json:"missing_fields,omitempty"`

	Prompt *PromptView `json:"prompt,omitempty"`

	SincerityIgnored bool                `json:"sincerity_ignored,omitempty"`
	Results          []ScaleResultView   `json:"results,omitempty"`
	Recommendation   *RecommendationView `json:"recommendation,omitempty"`
}

// FromSession builds the view a participant client renders.
func FromSession(s *assessment.Session, b *bank.Bank) SessionResponse {
	resp := SessionResponse{
		ID:      s.ID.String(),
		Profile: string(s.Profile),
		Stage:   string(s.Stage),
	}

	switch s.Stage {
	case assessment.StageStart, assessment.StageQuestionnaire:
		sections := questionnaire.Sections(s.Profile == bank.ProfileMilitary)
		resp.MissingFields = questionnaire.MissingRequired(sections, s.Biographical)

	case assessment.StageScreening, assessment.StageMediumRisk, assessment.StageHighRisk:
		if q := s.CurrentPrompt(); q != nil {
			resp.Prompt = &PromptView{
				QuestionID: q.ID,
				Text:       q.Text,
				Remaining:  len(s.Pending),
			}
		}

	case assessment.StageResults:
		resp.SincerityIgnored = s.SincerityIgnored
		for _, scale := range append(b.RiskScales(), bank.ScaleSincerity) {
			r, ok := s.Results[scale]
			if !ok {
				continue
			}
			resp.Results = append(resp.Results, ScaleResultView{
				Scale:       string(r.Scale),
				DisplayName: b.ScaleName(r.Scale),
				Tier:        string(r.Tier),
				RawScore:    r.RawScore,
				MaxPossible: r.MaxPossible,
				Percentage:  r.Percentage,
			})
		}
		if s.Recommendation != nil {
			resp.Recommendation = &RecommendationView{
				Verdict:         string(s.Recommendation.Verdict),
				CriticalFactors: s.Recommendation.CriticalFactors,
				WarningFactors:  s.Recommendation.WarningFactors,
			}
		}
	}
	return resp
}
