package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the assessment module.
type Metrics struct {
	// Sessions started by profile
	SessionsStarted *prometheus.CounterVec

	// Stage transitions by target stage
	StageTransitions *prometheus.CounterVec

	// Final verdicts by profile
	Verdicts *prometheus.CounterVec

	// Low-validity sincerity flags by resolution ("restart", "proceed")
	SincerityFlags *prometheus.CounterVec

	// Latency of a single answer submission including persistence
	AnswerLatency prometheus.Histogram

	// Latency of finalization (synthesis, archive, audit fan-out)
	FinalizeLatency prometheus.Histogram
}

// New creates a Metrics instance with all assessment metrics registered.
func New() *Metrics {
	return &Metrics{
		SessionsStarted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "psyscreen_sessions_started_total",
			Help: "Total assessment sessions started by profile",
		}, []string{"profile"}),

		StageTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "psyscreen_stage_transitions_total",
			Help: "Total session stage transitions by target stage",
		}, []string{"stage"}),

		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "psyscreen_verdicts_total",
			Help: "Total final verdicts by profile and verdict",
		}, []string{"profile", "verdict"}),

		SincerityFlags: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "psyscreen_sincerity_flags_total",
			Help: "Total low-validity sincerity flags by participant resolution",
		}, []string{"resolution"}),

		AnswerLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "psyscreen_answer_duration_seconds",
			Help:    "Duration of answer submission including session persistence",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		FinalizeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "psyscreen_finalize_duration_seconds",
			Help:    "Duration of finalization including archive and audit fan-out",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncSessionStarted records a new session.
func (m *Metrics) IncSessionStarted(profile string) {
	if m != nil {
		m.SessionsStarted.WithLabelValues(profile).Inc()
	}
}

// IncStageTransition records a transition into a stage.
func (m *Metrics) IncStageTransition(stage string) {
	if m != nil {
		m.StageTransitions.WithLabelValues(stage).Inc()
	}
}

// IncVerdict records a final verdict.
func (m *Metrics) IncVerdict(profile, verdict string) {
	if m != nil {
		m.Verdicts.WithLabelValues(profile, verdict).Inc()
	}
}

// IncSincerityFlag records how a low-validity flag was resolved.
func (m *Metrics) IncSincerityFlag(resolution string) {
	if m != nil {
		m.SincerityFlags.WithLabelValues(resolution).Inc()
	}
}

// ObserveAnswerLatency records one answer round trip.
func (m *Metrics) ObserveAnswerLatency(d time.Duration) {
	if m != nil {
		m.AnswerLatency.Observe(d.Seconds())
	}
}

// ObserveFinalizeLatency records a finalization fan-out.
func (m *Metrics) ObserveFinalizeLatency(d time.Duration) {
	if m != nil {
		m.FinalizeLatency.Observe(d.Seconds())
	}
}
