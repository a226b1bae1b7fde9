package cursor

import (
	"context"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

// Store holds the per-(tenant, queue) round-robin cursor. The cursor is
// engine-local scheduling state, not part of the storage contract: it records
// the member Position after which the next round-robin scan starts.
//
// Advance runs fn with the current cursor and atomically stores the returned
// value; implementations serialise Advance calls per key.
type Store interface {
	Advance(ctx context.Context, tenantID tenant.ID, queueID uuid.UUID, fn func(current int) (next int, err error)) error
}
