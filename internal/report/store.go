package report

import (
	"context"

	"github.com/google/uuid"
)

// Store archives completed assessment records.
type Store interface {
	Save(ctx context.Context, record Record) error
	Get(ctx context.Context, sessionID uuid.UUID) (Record, error)
}
