package tenant_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

type owned struct{ id tenant.ID }

func (o owned) Owner() tenant.ID { return o.id }

func TestGuard(t *testing.T) {
	id := uuid.New()
	require.NoError(t, tenant.Guard(id, owned{id: id}))

	err := tenant.Guard(uuid.New(), owned{id: id})
	assert.ErrorIs(t, err, tenant.ErrIsolationViolation)
}

func TestContextRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := tenant.WithID(context.Background(), id)

	got, ok := tenant.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = tenant.FromContext(context.Background())
	assert.False(t, ok)
}
