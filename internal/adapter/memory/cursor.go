package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

type cursorKey struct {
	tenantID tenant.ID
	queueID  uuid.UUID
}

type cursorCell struct {
	mu  sync.Mutex
	pos int
}

// CursorStore is the round-robin cursor arena: one logical cell per
// (tenant, queue), each with its own mutex so advancing one queue's cursor
// never blocks another. Cursors reset to -1 (head of the member list) on
// restart; they are scheduling state, not durable data.
type CursorStore struct {
	mu    sync.Mutex
	cells map[cursorKey]*cursorCell
}

func NewCursorStore() *CursorStore {
	return &CursorStore{cells: make(map[cursorKey]*cursorCell)}
}

func (s *CursorStore) cell(tenantID tenant.ID, queueID uuid.UUID) *cursorCell {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := cursorKey{tenantID: tenantID, queueID: queueID}
	c, ok := s.cells[key]
	if !ok {
		c = &cursorCell{pos: -1}
		s.cells[key] = c
	}
	return c
}

// Advance runs fn with the current cursor under the cell's lock and stores
// the returned position when fn succeeds. Holding the lock across fn
// serialises selection per queue, so two concurrent round-robin picks can
// never both advance from the same cursor.
func (s *CursorStore) Advance(_ context.Context, tenantID tenant.ID, queueID uuid.UUID, fn func(current int) (int, error)) error {
	c := s.cell(tenantID, queueID)
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(c.pos)
	if err != nil {
		return err
	}
	c.pos = next
	return nil
}
