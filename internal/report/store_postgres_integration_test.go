//go:build integration

package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"psyscreen/internal/report"
	"psyscreen/internal/scoring"
	"psyscreen/pkg/platform/sentinel"
	"psyscreen/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *report.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = report.NewPostgresStore(s.pg.DB)
	s.Require().NoError(s.store.Migrate(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.pg.DB.ExecContext(context.Background(), "TRUNCATE assessment_records")
	s.Require().NoError(err)
}

func makeRecord() report.Record {
	return report.Record{
		SessionID:   uuid.New(),
		Profile:     "military",
		CreatedAt:   time.Now().Add(-30 * time.Minute).UTC().Truncate(time.Microsecond),
		CompletedAt: time.Now().UTC().Truncate(time.Microsecond),
		FullName:    "Ахметов Н.С.",
		BirthDate:   "2004-02-11",
		Biographical: map[string]string{
			"full_name": "Ахметов Н.С.",
			"residence": "Астана",
		},
		Scales: []report.ScaleEntry{
			{Scale: "aggression", DisplayName: "Шкала агрессии (Басса-Перри)",
				Tier: scoring.RiskHigh, RawScore: 40, MaxPossible: 50,
				Percentage: 80, PositiveCount: 10, AnsweredCount: 10},
		},
		Verdict:         "not_recommended",
		CriticalFactors: []string{"High psychological risk: aggression"},
		WarningFactors:  []string{},
	}
}

func (s *PostgresStoreSuite) TestSaveAndGet() {
	ctx := context.Background()
	record := makeRecord()

	s.Require().NoError(s.store.Save(ctx, record))

	loaded, err := s.store.Get(ctx, record.SessionID)
	s.Require().NoError(err)
	s.Equal(record.SessionID, loaded.SessionID)
	s.Equal(record.Verdict, loaded.Verdict)
	s.Equal(record.Scales, loaded.Scales)
	s.Equal(record.Biographical, loaded.Biographical)
	s.Equal(record.CriticalFactors, loaded.CriticalFactors)
	s.True(record.CompletedAt.Equal(loaded.CompletedAt))
}

func (s *PostgresStoreSuite) TestGetUnknownReturnsNotFound() {
	_, err := s.store.Get(context.Background(), uuid.New())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestSaveReplacesOnRerun() {
	ctx := context.Background()
	record := makeRecord()
	s.Require().NoError(s.store.Save(ctx, record))

	record.Verdict = "recommended"
	record.CriticalFactors = []string{}
	s.Require().NoError(s.store.Save(ctx, record))

	loaded, err := s.store.Get(ctx, record.SessionID)
	s.Require().NoError(err)
	s.Equal("recommended", loaded.Verdict)
	s.Empty(loaded.CriticalFactors)
}
