package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AssignmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketflow_assignments_total",
			Help: "Total tickets assigned, by tenant, queue and strategy",
		},
		[]string{"tenant", "queue", "strategy"},
	)

	SaturationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketflow_queue_saturation_total",
			Help: "Assignment attempts that found no eligible agent",
		},
		[]string{"tenant", "queue"},
	)

	ReleasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketflow_releases_total",
			Help: "Ticket assignments released",
		},
		[]string{"tenant", "queue"},
	)

	AgentWorkload = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ticketflow_agent_workload",
			Help: "Open tickets currently assigned to an agent in a queue",
		},
		[]string{"tenant", "queue", "agent"},
	)
)

// Init registers the engine metrics with the default registry.
func Init() {
	prometheus.MustRegister(AssignmentsTotal)
	prometheus.MustRegister(SaturationTotal)
	prometheus.MustRegister(ReleasesTotal)
	prometheus.MustRegister(AgentWorkload)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
