package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"psyscreen/internal/assessment"
	"psyscreen/internal/assessment/metrics"
	"psyscreen/internal/audit"
	"psyscreen/internal/bank"
	"psyscreen/internal/questionnaire"
	"psyscreen/internal/report"
	dErrors "psyscreen/pkg/domain-errors"
	"psyscreen/pkg/platform/sentinel"
)

var tracer = otel.Tracer("psyscreen.assessment")

// Service orchestrates the assessment flow: load session, apply one engine
// transition, persist, emit. The engine holds all decision logic; the
// service owns persistence, auditing and metrics.
type Service struct {
	engine   *assessment.Engine
	sessions assessment.Store
	archive  report.Store
	recorder *audit.Recorder
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func New(
	engine *assessment.Engine,
	sessions assessment.Store,
	archive report.Store,
	recorder *audit.Recorder,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		engine:   engine,
		sessions: sessions,
		archive:  archive,
		recorder: recorder,
		metrics:  m,
		logger:   logger,
	}
}

// Start creates and persists a fresh session.
func (s *Service) Start(ctx context.Context, profile bank.Profile, seed int64) (*assessment.Session, error) {
	ctx, span := tracer.Start(ctx, "assessment.start",
		trace.WithAttributes(attribute.String("profile", string(profile))))
	defer span.End()

	session := s.engine.NewSession(profile, seed)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.metrics.IncSessionStarted(string(profile))
	s.record(session, audit.ActionSessionStarted, "")
	s.logger.InfoContext(ctx, "assessment session started",
		"session_id", session.ID,
		"profile", profile,
	)
	return session, nil
}

// Get returns the persisted session.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*assessment.Session, error) {
	return s.load(ctx, id)
}

// SubmitQuestionnaire merges biographical answers and persists the result.
func (s *Service) SubmitQuestionnaire(ctx context.Context, id uuid.UUID, answers questionnaire.Answers) (*assessment.Session, error) {
	ctx, span := tracer.Start(ctx, "assessment.submit_questionnaire")
	defer span.End()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	before := session.Stage
	if err := s.engine.SubmitQuestionnaire(session, answers); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if session.Stage == assessment.StageScreening && before != assessment.StageScreening {
		s.metrics.IncStageTransition(string(assessment.StageScreening))
		s.record(session, audit.ActionQuestionnaireDone, "")
	}
	return session, nil
}

// SubmitAnswer applies one psychometric answer. Draining a queue can move
// the session several stages forward, including straight to results.
func (s *Service) SubmitAnswer(ctx context.Context, id uuid.UUID, questionID string, value int) (*assessment.Session, error) {
	ctx, span := tracer.Start(ctx, "assessment.submit_answer",
		trace.WithAttributes(attribute.String("question_id", questionID)))
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.ObserveAnswerLatency(time.Since(start)) }()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	before := session.Stage
	if err := s.engine.SubmitAnswer(session, questionID, value); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if session.Stage != before {
		s.onStageChange(ctx, session)
	}
	return session, nil
}

// ResolveSincerity consumes the participant's decision on a low-validity
// sincerity flag.
func (s *Service) ResolveSincerity(ctx context.Context, id uuid.UUID, restart bool) (*assessment.Session, error) {
	ctx, span := tracer.Start(ctx, "assessment.resolve_sincerity",
		trace.WithAttributes(attribute.Bool("restart", restart)))
	defer span.End()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	before := session.Stage
	if err := s.engine.ResolveSincerityWarning(session, restart); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if restart {
		s.metrics.IncSincerityFlag("restart")
		s.record(session, audit.ActionSessionRestarted, "")
	} else {
		s.metrics.IncSincerityFlag("proceed")
		s.record(session, audit.ActionSincerityIgnored, "")
	}
	if session.Stage != before {
		s.onStageChange(ctx, session)
	}
	return session, nil
}

// Restart replaces the session, optionally keeping the biographical record.
func (s *Service) Restart(ctx context.Context, id uuid.UUID, preserveBiographical bool) (*assessment.Session, error) {
	ctx, span := tracer.Start(ctx, "assessment.restart")
	defer span.End()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	fresh := s.engine.Restart(session, preserveBiographical)
	if err := s.sessions.Save(ctx, fresh); err != nil {
		return nil, err
	}

	s.record(fresh, audit.ActionSessionRestarted, "")
	s.logger.InfoContext(ctx, "assessment session restarted",
		"session_id", fresh.ID,
		"preserve_biographical", preserveBiographical,
	)
	return fresh, nil
}

// Report returns the archived export record, building it on the fly when the
// archive has not caught up yet.
func (s *Service) Report(ctx context.Context, id uuid.UUID) (report.Record, error) {
	ctx, span := tracer.Start(ctx, "assessment.report")
	defer span.End()

	record, err := s.archive.Get(ctx, id)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return report.Record{}, err
	}

	session, err := s.load(ctx, id)
	if err != nil {
		return report.Record{}, err
	}
	return report.Build(session, s.engine.Bank(session.Profile), time.Now())
}

// onStageChange emits metrics and audit for every stage crossed, and runs
// the finalization fan-out when the session lands on results.
func (s *Service) onStageChange(ctx context.Context, session *assessment.Session) {
	s.metrics.IncStageTransition(string(session.Stage))

	switch session.Stage {
	case assessment.StageSincerityWarning:
		s.record(session, audit.ActionSincerityFlagged, "")
		s.logger.WarnContext(ctx, "sincerity validity flagged",
			"session_id", session.ID,
		)
	case assessment.StageResults:
		s.finalize(ctx, session)
	default:
		s.record(session, audit.ActionStageAdvanced, "")
	}
}

// finalize archives the export record and emits the completion event
// concurrently. Archive failures are logged, not surfaced: the participant
// already has their result and the session store still holds it.
func (s *Service) finalize(ctx context.Context, session *assessment.Session) {
	start := time.Now()
	defer func() { s.metrics.ObserveFinalizeLatency(time.Since(start)) }()

	verdict := string(session.Recommendation.Verdict)
	s.metrics.IncVerdict(string(session.Profile), verdict)

	record, err := report.Build(session, s.engine.Bank(session.Profile), time.Now())
	if err != nil {
		s.logger.ErrorContext(ctx, "export record build failed",
			"session_id", session.ID,
			"error", err,
		)
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.archive.Save(gctx, record)
	})
	g.Go(func() error {
		s.record(session, audit.ActionCompleted, verdict)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "assessment archive failed",
			"session_id", session.ID,
			"error", err,
		)
	}

	s.logger.InfoContext(ctx, "assessment completed",
		"session_id", session.ID,
		"profile", session.Profile,
		"verdict", verdict,
	)
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*assessment.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "assessment session not found")
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) record(session *assessment.Session, action, verdict string) {
	s.recorder.Record(audit.Event{
		SessionID: session.ID,
		Profile:   string(session.Profile),
		Action:    action,
		Stage:     string(session.Stage),
		Verdict:   verdict,
	})
}
