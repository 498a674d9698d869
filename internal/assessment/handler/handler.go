package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"psyscreen/internal/assessment"
	"psyscreen/internal/bank"
	"psyscreen/internal/platform/middleware"
	"psyscreen/internal/questionnaire"
	"psyscreen/internal/report"
	dErrors "psyscreen/pkg/domain-errors"
	"psyscreen/pkg/platform/httputil"
)

// Service defines the assessment operations the handler depends on.
type Service interface {
	Start(ctx context.Context, profile bank.Profile, seed int64) (*assessment.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*assessment.Session, error)
	SubmitQuestionnaire(ctx context.Context, id uuid.UUID, answers questionnaire.Answers) (*assessment.Session, error)
	SubmitAnswer(ctx context.Context, id uuid.UUID, questionID string, value int) (*assessment.Session, error)
	ResolveSincerity(ctx context.Context, id uuid.UUID, restart bool) (*assessment.Session, error)
	Restart(ctx context.Context, id uuid.UUID, preserveBiographical bool) (*assessment.Session, error)
	Report(ctx context.Context, id uuid.UUID) (report.Record, error)
}

// TokenIssuer mints session-scoped bearer tokens.
type TokenIssuer interface {
	GenerateSessionToken(sessionID uuid.UUID, profile string, expiresIn time.Duration) (string, error)
}

// Handler wires assessment endpoints to the assessment service.
type Handler struct {
	service  Service
	tokens   TokenIssuer
	tokenTTL time.Duration
	banks    map[bank.Profile]*bank.Bank
	logger   *slog.Logger
}

// New constructs an assessment handler with its dependencies.
func New(service Service, tokens TokenIssuer, tokenTTL time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		banks: map[bank.Profile]*bank.Bank{
			bank.ProfileMilitary: bank.ForProfile(bank.ProfileMilitary),
			bank.ProfileCivilian: bank.ForProfile(bank.ProfileCivilian),
		},
		logger: logger,
	}
}

// Register mounts assessment endpoints. Everything under /assessments/{id}
// requires the session token issued at start.
func (h *Handler) Register(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Post("/assessments", h.handleStart)
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/assessments/{id}", h.handleGet)
		r.Get("/assessments/{id}/prompt", h.handlePrompt)
		r.Get("/assessments/{id}/report", h.handleReport)
		r.Post("/assessments/{id}/questionnaire", h.handleQuestionnaire)
		r.Post("/assessments/{id}/answers", h.handleAnswer)
		r.Post("/assessments/{id}/sincerity", h.handleSincerity)
		r.Post("/assessments/{id}/restart", h.handleRestart)
	})
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StartRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	profile, err := bank.ParseProfile(req.Profile)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	session, err := h.service.Start(ctx, profile, req.Seed)
	if err != nil {
		h.logError(ctx, "session start failed", err)
		httputil.WriteError(w, err)
		return
	}

	token, err := h.tokens.GenerateSessionToken(session.ID, string(session.Profile), h.tokenTTL)
	if err != nil {
		h.logError(ctx, "session token generation failed", err)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "could not issue session token"))
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, StartResponse{
		Session: FromSession(session, h.banks[session.Profile]),
		Token:   token,
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(session, h.banks[session.Profile]))
}

func (h *Handler) handlePrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp := PromptResponse{Stage: string(session.Stage)}
	if q := session.CurrentPrompt(); q != nil {
		resp.Prompt = &PromptView{
			QuestionID: q.ID,
			Text:       q.Text,
			Remaining:  len(session.Pending),
		}
	} else if session.Stage != assessment.StageResults {
		// A null prompt is only meaningful once the assessment has
		// finished; before questioning starts it is a sequencing error.
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidState,
			"no question pending at stage "+string(session.Stage)))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleQuestionnaire(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req QuestionnaireRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	session, err := h.service.SubmitQuestionnaire(ctx, id, req.Answers)
	if err != nil {
		h.logError(ctx, "questionnaire submission failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(session, h.banks[session.Profile]))
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	session, err := h.service.SubmitAnswer(ctx, id, req.QuestionID, req.Value)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(session, h.banks[session.Profile]))
}

func (h *Handler) handleSincerity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SincerityRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	session, err := h.service.ResolveSincerity(ctx, id, req.Restart)
	if err != nil {
		h.logError(ctx, "sincerity resolution failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(session, h.banks[session.Profile]))
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req RestartRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	session, err := h.service.Restart(ctx, id, req.PreserveBiographical)
	if err != nil {
		h.logError(ctx, "session restart failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(session, h.banks[session.Profile]))
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	record, err := h.service.Report(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, record)
}

// sessionID parses the path id and checks it against the token claim: a
// session token only ever grants access to its own session.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid session id"))
		return uuid.Nil, false
	}

	claimed := middleware.GetSessionID(r.Context())
	if claimed != id.String() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "token does not match session"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err,
	)
}
