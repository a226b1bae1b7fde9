package queue

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
	registrysvc "github.com/omnidesk/ticketflow/internal/service/registry"
)

// tenantFrom returns the tenant bound by the TenantResolver middleware.
func tenantFrom(c *gin.Context) tenant.ID {
	id, _ := tenant.FromContext(c.Request.Context())
	return id
}

// statusFor maps registry errors onto HTTP statuses. Isolation violations are
// forbidden, never 404, to make caller bugs loud.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tenant.ErrIsolationViolation):
		return http.StatusForbidden
	case errors.Is(err, domainqueue.ErrNotFound), errors.Is(err, domainqueue.ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainqueue.ErrDuplicateName),
		errors.Is(err, domainqueue.ErrDuplicateMember),
		errors.Is(err, domainqueue.ErrMemberHasOpenTickets):
		return http.StatusConflict
	case errors.Is(err, domainqueue.ErrInvalidCapacity), errors.Is(err, domainqueue.ErrInvalidPriority):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func Register(rg *gin.RouterGroup, svc *registrysvc.Service) {
	rg.POST("", createQueue(svc))
	rg.GET("", listQueues(svc))
	rg.GET("/:id", getQueue(svc))
	rg.PATCH("/:id", updateQueue(svc))
	rg.POST("/:id/deactivate", deactivateQueue(svc))
	rg.GET("/:id/agents", listEligibleAgents(svc))
	rg.POST("/:id/members", addMember(svc))
	rg.PATCH("/:id/members/:agentId", updateMember(svc))
	rg.DELETE("/:id/members/:agentId", removeMember(svc))
}

type createQueueReq struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Order       int                  `json:"order"`
	Strategy    string               `json:"strategy"`
	Hours       []domainqueue.Window `json:"hours"`
}

func createQueue(svc *registrysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createQueueReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var hours *domainqueue.Schedule
		if len(req.Hours) > 0 {
			s, err := domainqueue.NewSchedule(req.Hours)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			hours = s
		}

		q, err := svc.CreateQueue(c.Request.Context(), tenantFrom(c), req.Name, req.Description, req.Order, domainqueue.Strategy(req.Strategy), hours)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, q)
	}
}

func listQueues(svc *registrysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("active") == "true"
		queues, err := svc.ListQueues(c.Request.Context(), tenantFrom(c), activeOnly)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		if queues == nil {
			queues = []domainqueue.Queue{}
		}
		c.JSON(http.StatusOK, queues)
	}
}

func getQueue(svc *registrysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		q, err := svc.GetQueue(c.Request.Context(), tenantFrom(c), id)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, q)
	}
}

type updateQueueReq struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Order       *int                 `json:"order"`
	Strategy    *string              `json:"strategy"`
	Hours       []domainqueue.Window `json:"hours"`
}

func updateQueue(svc *registrysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req updateQueueReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		q, err := svc.GetQueue(c.Request.Context(), tenantFrom(c), id)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		if req.Name != nil {
			q.Name = *req.Name
		}
		if req.Description != nil {
			q.Description = *req.Description
		}
		if req.Order != nil {
			q.Order = *req.Order
		}
		if req.Strategy != nil {
			q.Strategy = domainqueue.Strategy(*req.Strategy)
		}
		if len(req.Hours) > 0 {
			s, err := domainqueue.NewSchedule(req.Hours)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			q.Hours = s
		}

		if err := svc.UpdateQueue(c.Request.Context(), q); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, q)
	}
}

func deactivateQueue(svc *registrysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Deactivate(c.Request.Context(), tenantFrom(c), id); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listEligibleAgents(svc *registrysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		at := time.Now().UTC()
		if v := c.Query("at"); v != "" {
			at, err = time.Parse(time.RFC3339, v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at timestamp"})
				return
			}
		}

		agents, err := svc.ListEligibleAgents(c.Request.Context(), tenantFrom(c), id, at)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"agents": agents})
	}
}

type memberReq struct {
	AgentID  uuid.UUID `json:"agent_id" binding:"required"`
	Capacity int       `json:"capacity"`
	Priority int       `json:"priority"`
}

func addMember(svc *registrysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		queueID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req memberReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m, err := svc.AddMember(c.Request.Context(), tenantFrom(c), queueID, req.AgentID, req.Capacity, req.Priority)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

type updateMemberReq struct {
	Capacity int `json:"capacity" binding:"required"`
	Priority int `json:"priority" binding:"required"`
}

func updateMember(svc *registrysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		queueID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		agentID, err := uuid.Parse(c.Param("agentId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agentId"})
			return
		}

		var req updateMemberReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m, err := svc.UpdateMember(c.Request.Context(), tenantFrom(c), queueID, agentID, req.Capacity, req.Priority)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func removeMember(svc *registrysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		queueID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		agentID, err := uuid.Parse(c.Param("agentId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agentId"})
			return
		}

		force := c.Query("force") == "true"
		if err := svc.RemoveMember(c.Request.Context(), tenantFrom(c), queueID, agentID, force); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
