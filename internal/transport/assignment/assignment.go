package assignment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/domain/tenant"
	"github.com/omnidesk/ticketflow/internal/domain/ticket"
	assignersvc "github.com/omnidesk/ticketflow/internal/service/assigner"
)

func tenantFrom(c *gin.Context) tenant.ID {
	id, _ := tenant.FromContext(c.Request.Context())
	return id
}

// statusFor maps coordinator errors onto HTTP statuses. Expected business
// conditions get conflict codes so API clients can branch on them.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tenant.ErrIsolationViolation):
		return http.StatusForbidden
	case errors.Is(err, domainqueue.ErrNotFound),
		errors.Is(err, domainqueue.ErrMemberNotFound),
		errors.Is(err, ticket.ErrNotAssigned):
		return http.StatusNotFound
	case errors.Is(err, domainqueue.ErrQueueInactive),
		errors.Is(err, ticket.ErrAlreadyAssigned),
		errors.Is(err, assignersvc.ErrQueueSaturated):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Register(rg *gin.RouterGroup, svc *assignersvc.Service) {
	rg.POST("", assign(svc))
	rg.GET("/:ticketId", getBinding(svc))
	rg.GET("/:ticketId/decisions", listDecisions(svc))
	rg.DELETE("/:ticketId", release(svc))
}

type assignReq struct {
	TicketID uuid.UUID  `json:"ticket_id" binding:"required"`
	QueueID  uuid.UUID  `json:"queue_id" binding:"required"`
	Strategy string     `json:"strategy"`
	AgentID  *uuid.UUID `json:"agent_id"`
	Reassign bool       `json:"reassign"`
}

func assign(svc *assignersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assignReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		opts := assignersvc.Options{
			ManualAgentID: req.AgentID,
			Reassign:      req.Reassign,
		}
		if req.Strategy != "" {
			strat, err := domainqueue.ParseStrategy(req.Strategy)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			opts.StrategyOverride = strat
		}

		d, err := svc.Assign(c.Request.Context(), tenantFrom(c), req.TicketID, req.QueueID, opts)
		if err != nil {
			// Saturation under SaturationIsError and business conflicts still
			// carry the decision so clients can inspect the outcome.
			c.JSON(statusFor(err), gin.H{"error": err.Error(), "decision": d})
			return
		}
		// A saturated decision is a successful call: the ticket stays pending.
		c.JSON(http.StatusOK, d)
	}
}

func getBinding(svc *assignersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketID, err := uuid.Parse(c.Param("ticketId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticketId"})
			return
		}

		b, err := svc.GetBinding(c.Request.Context(), tenantFrom(c), ticketID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

func listDecisions(svc *assignersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketID, err := uuid.Parse(c.Param("ticketId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticketId"})
			return
		}

		ds, err := svc.Decisions(c.Request.Context(), tenantFrom(c), ticketID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"decisions": ds})
	}
}

func release(svc *assignersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticketID, err := uuid.Parse(c.Param("ticketId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticketId"})
			return
		}

		if err := svc.Release(c.Request.Context(), tenantFrom(c), ticketID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
