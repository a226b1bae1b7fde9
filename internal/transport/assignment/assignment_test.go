package assignment_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnidesk/ticketflow/internal/adapter/memory"
	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/ticket"
	assignersvc "github.com/omnidesk/ticketflow/internal/service/assigner"
	registrysvc "github.com/omnidesk/ticketflow/internal/service/registry"
	workloadsvc "github.com/omnidesk/ticketflow/internal/service/workload"
	"github.com/omnidesk/ticketflow/internal/testutil"
	"github.com/omnidesk/ticketflow/internal/transport"
	transportassignment "github.com/omnidesk/ticketflow/internal/transport/assignment"
	transportqueue "github.com/omnidesk/ticketflow/internal/transport/queue"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	queues := memory.NewQueueRepository()
	bindings := memory.NewAssignmentRepository()
	bus := testutil.NewCaptureBus()
	wl := workloadsvc.NewService(memory.NewWorkloadRepository())
	reg := registrysvc.NewService(queues, bindings, wl, bus, domainqueue.StrategyRoundRobin)
	asg := assignersvc.NewService(queues, reg, wl, bindings, memory.NewCursorStore(), bus, assignersvc.Config{})

	r := gin.New()
	api := r.Group("/api", transport.TenantResolver())
	transportqueue.Register(api.Group("/queues"), reg)
	transportassignment.Register(api.Group("/assignments"), asg)
	return r
}

func do(r *gin.Engine, method, path string, tenantID uuid.UUID, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tenantID != uuid.Nil {
		req.Header.Set("X-Tenant-ID", tenantID.String())
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seed creates a queue with one member of the given capacity over HTTP.
func seed(t *testing.T, r *gin.Engine, tenantID uuid.UUID, capacity int) (queueID, agentID uuid.UUID) {
	t.Helper()
	w := do(r, http.MethodPost, "/api/queues", tenantID, map[string]any{"name": "support"})
	require.Equal(t, http.StatusCreated, w.Code)
	var q domainqueue.Queue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))

	agentID = uuid.New()
	w = do(r, http.MethodPost, "/api/queues/"+q.ID.String()+"/members", tenantID,
		map[string]any{"agent_id": agentID, "capacity": capacity})
	require.Equal(t, http.StatusCreated, w.Code)
	return q.ID, agentID
}

func TestAssign_Success(t *testing.T) {
	r := newRouter(t)
	tenantID := uuid.New()
	queueID, agentID := seed(t, r, tenantID, 5)
	ticketID := uuid.New()

	w := do(r, http.MethodPost, "/api/assignments", tenantID,
		map[string]any{"ticket_id": ticketID, "queue_id": queueID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var d ticket.Decision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, ticket.OutcomeAssigned, d.Outcome)
	require.NotNil(t, d.AgentID)
	assert.Equal(t, agentID, *d.AgentID)
}

func TestAssign_ValidationErrors(t *testing.T) {
	r := newRouter(t)
	tenantID := uuid.New()
	queueID, _ := seed(t, r, tenantID, 5)

	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{
			name:     "missing ticket_id",
			body:     map[string]any{"queue_id": queueID},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown strategy",
			body:     map[string]any{"ticket_id": uuid.New(), "queue_id": queueID, "strategy": "fastest_first"},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "unknown queue",
			body:     map[string]any{"ticket_id": uuid.New(), "queue_id": uuid.New()},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/assignments", tenantID, tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestAssign_DuplicateConflicts(t *testing.T) {
	r := newRouter(t)
	tenantID := uuid.New()
	queueID, _ := seed(t, r, tenantID, 5)
	ticketID := uuid.New()
	body := map[string]any{"ticket_id": ticketID, "queue_id": queueID}

	w := do(r, http.MethodPost, "/api/assignments", tenantID, body)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/assignments", tenantID, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The conflict response still carries the decision for the caller.
	var resp struct {
		Decision ticket.Decision `json:"decision"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ticket.OutcomeAlreadyAssigned, resp.Decision.Outcome)
}

func TestAssign_SaturatedReturnsOK(t *testing.T) {
	r := newRouter(t)
	tenantID := uuid.New()
	queueID, _ := seed(t, r, tenantID, 1)

	w := do(r, http.MethodPost, "/api/assignments", tenantID,
		map[string]any{"ticket_id": uuid.New(), "queue_id": queueID})
	require.Equal(t, http.StatusOK, w.Code)

	// Capacity is exhausted: the next ticket stays pending, which is a
	// successful call with a saturated decision.
	w = do(r, http.MethodPost, "/api/assignments", tenantID,
		map[string]any{"ticket_id": uuid.New(), "queue_id": queueID})
	require.Equal(t, http.StatusOK, w.Code)

	var d ticket.Decision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, ticket.OutcomeSaturated, d.Outcome)
	assert.Nil(t, d.AgentID)
}

func TestBindingLifecycle(t *testing.T) {
	r := newRouter(t)
	tenantID := uuid.New()
	queueID, agentID := seed(t, r, tenantID, 5)
	ticketID := uuid.New()

	w := do(r, http.MethodPost, "/api/assignments", tenantID,
		map[string]any{"ticket_id": ticketID, "queue_id": queueID})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/assignments/"+ticketID.String(), tenantID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var b ticket.Binding
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, agentID, b.AgentID)

	// Another tenant cannot see the binding.
	w = do(r, http.MethodGet, "/api/assignments/"+ticketID.String(), uuid.New(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodDelete, "/api/assignments/"+ticketID.String(), tenantID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Release is idempotent over HTTP as well.
	w = do(r, http.MethodDelete, "/api/assignments/"+ticketID.String(), tenantID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/api/assignments/"+ticketID.String(), tenantID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDecisionTrailEndpoint(t *testing.T) {
	r := newRouter(t)
	tenantID := uuid.New()
	queueID, _ := seed(t, r, tenantID, 5)
	ticketID := uuid.New()
	body := map[string]any{"ticket_id": ticketID, "queue_id": queueID}

	w := do(r, http.MethodPost, "/api/assignments", tenantID, body)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/api/assignments", tenantID, body)
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodGet, "/api/assignments/"+ticketID.String()+"/decisions", tenantID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Decisions []ticket.Decision `json:"decisions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Decisions, 2)
	assert.Equal(t, ticket.OutcomeAlreadyAssigned, resp.Decisions[0].Outcome)
	assert.Equal(t, ticket.OutcomeAssigned, resp.Decisions[1].Outcome)
}

func TestAssign_ManualOverride(t *testing.T) {
	r := newRouter(t)
	tenantID := uuid.New()
	queueID, agentID := seed(t, r, tenantID, 1)

	// Fill the agent, then route directly to it anyway.
	w := do(r, http.MethodPost, "/api/assignments", tenantID,
		map[string]any{"ticket_id": uuid.New(), "queue_id": queueID})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/assignments", tenantID,
		map[string]any{"ticket_id": uuid.New(), "queue_id": queueID, "agent_id": agentID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var d ticket.Decision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.True(t, d.CapacityBypassed)
	assert.Equal(t, domainqueue.StrategyManual, d.Strategy)
}
