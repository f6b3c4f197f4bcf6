package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ChatRequests = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hostel_chat_requests_total", Help: "Total chat messages handled"},
	)
	ContextHydrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hostel_context_hydrations_total", Help: "Total context-only hydration requests"},
	)
	LLMFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hostel_llm_failures_total", Help: "Total model calls that fell back to the canned reply"},
	)
	TicketsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hostel_tickets_created_total", Help: "Total complaint tickets auto-created"},
	)
)

func Register() {
	prometheus.MustRegister(ChatRequests, ContextHydrations, LLMFailures, TicketsCreated)
}
