package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"psyscreen/internal/assessment"
	"psyscreen/internal/assessment/handler/mocks"
	"psyscreen/internal/bank"
	"psyscreen/internal/platform/middleware"
	"psyscreen/internal/report"
	"psyscreen/internal/scoring"
	"psyscreen/internal/synthesis"
	dErrors "psyscreen/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service,TokenIssuer
type AssessmentHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *AssessmentHandlerSuite) SetupSuite() {
	s.ctx = context.Background()
}

func TestAssessmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssessmentHandlerSuite))
}

func newTestHandler(t *testing.T) (*chi.Mux, *mocks.MockService, *mocks.MockTokenIssuer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	mockTokens := mocks.NewMockTokenIssuer(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(mockService, mockTokens, time.Hour, logger)
	r := chi.NewRouter()
	// Auth middleware is exercised in its own package; tests inject claims
	// directly into the request context.
	passthrough := func(next http.Handler) http.Handler { return next }
	h.Register(r, passthrough)
	return r, mockService, mockTokens
}

func screeningSession(id uuid.UUID) *assessment.Session {
	return &assessment.Session{
		ID:      id,
		Profile: bank.ProfileMilitary,
		Stage:   assessment.StageScreening,
		Pending: []bank.Question{
			{ID: "ag1", Text: "Иногда я не могу сдержать желание ударить другого человека", Scale: bank.ScaleAggression, Tier: bank.TierScreening},
			{ID: "is1", Text: "Я предпочитаю проводить время в одиночестве", Scale: bank.ScaleIsolation, Tier: bank.TierScreening},
		},
	}
}

func withSessionClaim(req *http.Request, id uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeySessionID, id.String())
	return req.WithContext(ctx)
}

func (s *AssessmentHandlerSuite) TestStartIssuesToken() {
	r, mockService, mockTokens := newTestHandler(s.T())
	sessionID := uuid.New()

	mockService.EXPECT().
		Start(gomock.Any(), bank.ProfileMilitary, int64(0)).
		Return(&assessment.Session{ID: sessionID, Profile: bank.ProfileMilitary, Stage: assessment.StageStart}, nil)
	mockTokens.EXPECT().
		GenerateSessionToken(sessionID, "military", time.Hour).
		Return("signed-token", nil)

	body := bytes.NewBufferString(`{"profile":"military"}`)
	req := httptest.NewRequest(http.MethodPost, "/assessments", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	var resp StartResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("signed-token", resp.Token)
	s.Equal(sessionID.String(), resp.Session.ID)
	s.Equal("start", resp.Session.Stage)
	s.NotEmpty(resp.Session.MissingFields)
}

func (s *AssessmentHandlerSuite) TestStartRejectsUnknownProfile() {
	r, _, _ := newTestHandler(s.T())

	body := bytes.NewBufferString(`{"profile":"astronaut"}`)
	req := httptest.NewRequest(http.MethodPost, "/assessments", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("bad_request", resp["error"])
}

func (s *AssessmentHandlerSuite) TestGetRendersPrompt() {
	r, mockService, _ := newTestHandler(s.T())
	sessionID := uuid.New()
	mockService.EXPECT().
		Get(gomock.Any(), sessionID).
		Return(screeningSession(sessionID), nil)

	req := httptest.NewRequest(http.MethodGet, "/assessments/"+sessionID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusOK, w.Code)
	var resp SessionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("screening", resp.Stage)
	s.Require().NotNil(resp.Prompt)
	s.Equal("ag1", resp.Prompt.QuestionID)
	s.Equal(2, resp.Prompt.Remaining)
}

func (s *AssessmentHandlerSuite) TestTokenMustMatchSession() {
	r, _, _ := newTestHandler(s.T())
	sessionID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/assessments/"+sessionID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, uuid.New()))

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AssessmentHandlerSuite) TestInvalidSessionIDRejected() {
	r, _, _ := newTestHandler(s.T())

	req := httptest.NewRequest(http.MethodGet, "/assessments/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, uuid.New()))

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AssessmentHandlerSuite) TestAnswerForwardsToService() {
	r, mockService, _ := newTestHandler(s.T())
	sessionID := uuid.New()

	after := screeningSession(sessionID)
	after.Pending = after.Pending[1:]
	mockService.EXPECT().
		SubmitAnswer(gomock.Any(), sessionID, "ag1", 4).
		Return(after, nil)

	body := bytes.NewBufferString(`{"question_id":"ag1","value":4}`)
	req := httptest.NewRequest(http.MethodPost, "/assessments/"+sessionID.String()+"/answers", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusOK, w.Code)
	var resp SessionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("is1", resp.Prompt.QuestionID)
}

func (s *AssessmentHandlerSuite) TestAnswerRejectsUnknownFields() {
	r, _, _ := newTestHandler(s.T())
	sessionID := uuid.New()

	body := bytes.NewBufferString(`{"question_id":"ag1","value":4,"hint":"x"}`)
	req := httptest.NewRequest(http.MethodPost, "/assessments/"+sessionID.String()+"/answers", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AssessmentHandlerSuite) TestAnswerErrorsKeepEnvelope() {
	r, mockService, _ := newTestHandler(s.T())
	sessionID := uuid.New()
	mockService.EXPECT().
		SubmitAnswer(gomock.Any(), sessionID, "ag_full1", 3).
		Return(nil, dErrors.New(dErrors.CodeBadRequest, "question ag_full1 is not pending"))

	body := bytes.NewBufferString(`{"question_id":"ag_full1","value":3}`)
	req := httptest.NewRequest(http.MethodPost, "/assessments/"+sessionID.String()+"/answers", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("bad_request", resp["error"])
	s.Equal("question ag_full1 is not pending", resp["error_description"])
}

func (s *AssessmentHandlerSuite) TestSincerityResolution() {
	r, mockService, _ := newTestHandler(s.T())
	sessionID := uuid.New()

	after := screeningSession(sessionID)
	after.Stage = assessment.StageMediumRisk
	after.SincerityIgnored = true
	mockService.EXPECT().
		ResolveSincerity(gomock.Any(), sessionID, false).
		Return(after, nil)

	body := bytes.NewBufferString(`{"restart":false}`)
	req := httptest.NewRequest(http.MethodPost, "/assessments/"+sessionID.String()+"/sincerity", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusOK, w.Code)
	var resp SessionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("medium_risk_assessment", resp.Stage)
}

func (s *AssessmentHandlerSuite) TestResultsRendering() {
	r, mockService, _ := newTestHandler(s.T())
	sessionID := uuid.New()

	session := &assessment.Session{
		ID:      sessionID,
		Profile: bank.ProfileMilitary,
		Stage:   assessment.StageResults,
		Results: map[bank.ScaleID]scoring.ScaleResult{
			bank.ScaleAggression: {
				Scale: bank.ScaleAggression, RawScore: 40, MaxPossible: 50,
				Percentage: 80, Tier: scoring.RiskHigh,
			},
			bank.ScaleSincerity: {
				Scale: bank.ScaleSincerity, RawScore: 9, MaxPossible: 15,
				Percentage: 60, Tier: scoring.ValidityOK,
			},
		},
		Recommendation: &synthesis.Recommendation{
			Verdict:         synthesis.VerdictNotRecommended,
			CriticalFactors: []string{synthesis.FactorHighRiskScale + ": aggression"},
			WarningFactors:  []string{},
		},
	}
	mockService.EXPECT().Get(gomock.Any(), sessionID).Return(session, nil)

	req := httptest.NewRequest(http.MethodGet, "/assessments/"+sessionID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusOK, w.Code)
	var resp SessionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("results", resp.Stage)
	s.Require().Len(resp.Results, 2)
	s.Equal("aggression", resp.Results[0].Scale)
	s.Equal("high", resp.Results[0].Tier)
	s.Equal("sincerity", resp.Results[1].Scale)
	s.Equal("valid", resp.Results[1].Tier)
	s.Require().NotNil(resp.Recommendation)
	s.Equal("not_recommended", resp.Recommendation.Verdict)
}

func (s *AssessmentHandlerSuite) TestPromptReturnsCurrentQuestion() {
	r, mockService, _ := newTestHandler(s.T())
	sessionID := uuid.New()
	mockService.EXPECT().
		Get(gomock.Any(), sessionID).
		Return(screeningSession(sessionID), nil)

	req := httptest.NewRequest(http.MethodGet, "/assessments/"+sessionID.String()+"/prompt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusOK, w.Code)
	var resp PromptResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("screening", resp.Stage)
	s.Require().NotNil(resp.Prompt)
	s.Equal("ag1", resp.Prompt.QuestionID)
	s.Equal(2, resp.Prompt.Remaining)
}

func (s *AssessmentHandlerSuite) TestPromptNullAtResults() {
	r, mockService, _ := newTestHandler(s.T())
	sessionID := uuid.New()
	mockService.EXPECT().
		Get(gomock.Any(), sessionID).
		Return(&assessment.Session{ID: sessionID, Profile: bank.ProfileMilitary, Stage: assessment.StageResults}, nil)

	req := httptest.NewRequest(http.MethodGet, "/assessments/"+sessionID.String()+"/prompt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusOK, w.Code)
	var raw map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &raw))
	s.JSONEq(`"results"`, string(raw["stage"]))
	s.Equal("null", string(raw["prompt"]))
}

func (s *AssessmentHandlerSuite) TestPromptUnavailableBeforeQuestioning() {
	r, mockService, _ := newTestHandler(s.T())
	sessionID := uuid.New()
	mockService.EXPECT().
		Get(gomock.Any(), sessionID).
		Return(&assessment.Session{ID: sessionID, Profile: bank.ProfileMilitary, Stage: assessment.StageQuestionnaire}, nil)

	req := httptest.NewRequest(http.MethodGet, "/assessments/"+sessionID.String()+"/prompt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusConflict, w.Code)
}

func (s *AssessmentHandlerSuite) TestReportReturnsRecord() {
	r, mockService, _ := newTestHandler(s.T())
	sessionID := uuid.New()
	mockService.EXPECT().
		Report(gomock.Any(), sessionID).
		Return(report.Record{SessionID: sessionID, Verdict: "recommended"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/assessments/"+sessionID.String()+"/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSessionClaim(req, sessionID))

	s.Equal(http.StatusOK, w.Code)
	var resp report.Record
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("recommended", resp.Verdict)
}
