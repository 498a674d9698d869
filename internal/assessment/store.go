package assessment

import (
	"context"

	"github.com/google/uuid"
)

// Store persists sessions between requests. Implementations return
// sentinel.ErrNotFound for unknown ids and must never hand out state that
// aliases their internal copy.
type Store interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
