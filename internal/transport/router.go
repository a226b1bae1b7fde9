package transport

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/omnidesk/ticketflow/internal/domain/event"
	"github.com/omnidesk/ticketflow/internal/metrics"
	portbus "github.com/omnidesk/ticketflow/internal/port/eventbus"
	assignersvc "github.com/omnidesk/ticketflow/internal/service/assigner"
	registrysvc "github.com/omnidesk/ticketflow/internal/service/registry"
	transportassignment "github.com/omnidesk/ticketflow/internal/transport/assignment"
	transportqueue "github.com/omnidesk/ticketflow/internal/transport/queue"
	"github.com/omnidesk/ticketflow/internal/transport/ws"
)

// NewRouter assembles the gin engine: API routes behind the tenant resolver,
// a websocket hub fed from the assignment event channel, and /metrics.
func NewRouter(ctx context.Context, registry *registrysvc.Service, assigner *assignersvc.Service, bus portbus.EventBus) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), CORSMiddleware())

	hub := ws.NewHub()
	if _, err := bus.Subscribe(ctx, event.ChannelAssignment, func(_ context.Context, e event.Event) {
		hub.Broadcast(e)
	}); err != nil {
		slog.Error("failed to subscribe websocket hub", "error", err)
	}

	api := r.Group("/api", TenantResolver())
	transportqueue.Register(api.Group("/queues"), registry)
	transportassignment.Register(api.Group("/assignments"), assigner)
	hub.Register(r.Group("/api/ws"))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	return r
}
