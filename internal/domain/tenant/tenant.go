package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrIsolationViolation is returned whenever an operation scoped to one tenant
// touches an entity owned by another. It is never retried and always surfaced:
// it indicates a caller bug or a security issue, not a transient condition.
var ErrIsolationViolation = errors.New("tenant isolation violation")

// ID identifies an isolated customer organisation. Every entity in the engine
// is partitioned by it.
type ID = uuid.UUID

type ctxKey struct{}

// WithID binds a tenant to the context for the duration of a request.
func WithID(ctx context.Context, id ID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the tenant bound to ctx, if any.
func FromContext(ctx context.Context) (ID, bool) {
	id, ok := ctx.Value(ctxKey{}).(ID)
	return id, ok
}

// Owned is implemented by every tenant-scoped entity.
type Owned interface {
	Owner() ID
}

// Guard verifies that an entity loaded from storage (or from an in-memory
// cache) belongs to the expected tenant. Row-level filters are not trusted on
// their own because the engine may cache queue and workload state in memory.
func Guard(expected ID, entity Owned) error {
	if entity.Owner() != expected {
		return ErrIsolationViolation
	}
	return nil
}
