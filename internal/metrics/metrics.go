package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ClassificationsTotal counts completed classifications by verdict.
	ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "phishguard_classifications_total",
		Help: "Completed URL classifications by verdict.",
	}, []string{"verdict"})

	// CreditRejectionsTotal counts check requests refused at zero balance.
	CreditRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phishguard_credit_rejections_total",
		Help: "Check requests rejected for insufficient credits.",
	})

	// ClassifierErrorsTotal counts classifications that came back unavailable.
	ClassifierErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phishguard_classifier_errors_total",
		Help: "Classification calls that failed or timed out.",
	})

	// ClassifyDuration observes end-to-end check latency in seconds.
	ClassifyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "phishguard_classify_duration_seconds",
		Help:    "Latency of the classify call.",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
