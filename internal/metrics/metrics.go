package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Значения label "flow"
const (
	FlowButtons = "buttons"
	FlowExtract = "extract"
)

var (
	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "urlbot_requests_total",
		Help: "Total number of handled messages by command.",
	}, []string{"command"})

	PostsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "urlbot_posts_sent_total",
		Help: "Total number of delivered posts.",
	}, []string{"flow"})

	PostFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "urlbot_post_failures_total",
		Help: "Total number of posts that could not be built or delivered.",
	}, []string{"flow", "reason"})

	Unauthorized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "urlbot_unauthorized_total",
		Help: "Total number of rejected messages from non-admin users.",
	})

	ActiveDrafts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "urlbot_active_drafts",
		Help: "Number of unfinished drafts kept in memory.",
	})
)

// Serve отдаёт метрики по адресу addr (блокирующий вызов)
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
