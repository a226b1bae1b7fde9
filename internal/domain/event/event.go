package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/omnidesk/ticketflow/internal/domain/tenant"
)

type Type string

const (
	TypeAssignmentMade     Type = "assignment_made"
	TypeAssignmentReleased Type = "assignment_released"
	TypeQueueSaturated     Type = "queue_saturated"
	TypeQueueCreated       Type = "queue_created"
	TypeQueueDeactivated   Type = "queue_deactivated"
	TypeMemberAdded        Type = "member_added"
	TypeMemberRemoved      Type = "member_removed"
	TypeIsolationViolation Type = "isolation_violation"
)

// Channel is a domain-scoped Postgres NOTIFY channel. All event types within
// a domain share one LISTEN connection.
type Channel string

const (
	ChannelAssignment Channel = "assignment"
	ChannelQueue      Channel = "queue"
	ChannelAudit      Channel = "audit"
)

var typeToChannel = map[Type]Channel{
	TypeAssignmentMade:     ChannelAssignment,
	TypeAssignmentReleased: ChannelAssignment,
	TypeQueueSaturated:     ChannelAssignment,
	TypeQueueCreated:       ChannelQueue,
	TypeQueueDeactivated:   ChannelQueue,
	TypeMemberAdded:        ChannelQueue,
	TypeMemberRemoved:      ChannelQueue,
	TypeIsolationViolation: ChannelAudit,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries identifiers only, not full state. Subscribers fetch fresh
// state from the appropriate repository. Meta holds small string attributes
// such as the strategy used or the chosen agent id.
type Event struct {
	Type      Type              `json:"type"`
	TenantID  tenant.ID         `json:"tenant_id"`
	EntityID  uuid.UUID         `json:"entity_id"`
	Meta      map[string]string `json:"meta,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

func New(eventType Type, tenantID tenant.ID, entityID uuid.UUID) Event {
	return Event{
		Type:      eventType,
		TenantID:  tenantID,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}

// WithMeta returns a copy of the event with one attribute added.
func (e Event) WithMeta(key, value string) Event {
	meta := make(map[string]string, len(e.Meta)+1)
	for k, v := range e.Meta {
		meta[k] = v
	}
	meta[key] = value
	e.Meta = meta
	return e
}
