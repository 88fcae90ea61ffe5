package check

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes prometheus counters for a Runner's activity. Each
// Metrics owns its own registry rather than registering against
// prometheus's global default, so creating more than one Runner in a
// process (as tests do) never collides.
type Metrics struct {
	CasesRun        prometheus.Counter
	ShrinksAccepted prometheus.Counter
	ShrinksRejected prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics constructs a Metrics with its counters registered against a
// fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CasesRun: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosecheck_cases_run_total",
			Help: "Total number of property-test cases executed.",
		}),
		ShrinksAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosecheck_shrinks_accepted_total",
			Help: "Total number of shrink candidates accepted.",
		}),
		ShrinksRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosecheck_shrinks_rejected_total",
			Help: "Total number of shrink candidates rejected as over-simplified.",
		}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.CasesRun, m.ShrinksAccepted, m.ShrinksRejected)
	return m
}

// Registry returns the registry Metrics' counters are registered against,
// for callers that want to serve or scrape them.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
