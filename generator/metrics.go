package generator

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics recorded during generation. A nil *Metrics records nothing.
type Metrics struct {
	operationsProcessed *prometheus.CounterVec
	fallbackTags        prometheus.Counter
	documentTags        prometheus.Counter
}

// NewMetrics creates the generation metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operationsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openapi_gen_operations_processed_total",
				Help: "Total number of operations processed by result",
			},
			[]string{"result"},
		),
		fallbackTags: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "openapi_gen_fallback_tags_total",
				Help: "Total number of operations tagged with their declaring type name",
			},
		),
		documentTags: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "openapi_gen_document_tags_registered_total",
				Help: "Total number of tags registered with generated documents",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.operationsProcessed, m.fallbackTags, m.documentTags} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) operationProcessed(included bool) {
	if m == nil {
		return
	}
	result := "included"
	if !included {
		result = "excluded"
	}
	m.operationsProcessed.WithLabelValues(result).Inc()
}

func (m *Metrics) fallbackTagApplied() {
	if m == nil {
		return
	}
	m.fallbackTags.Inc()
}

func (m *Metrics) documentTagRegistered() {
	if m == nil {
		return
	}
	m.documentTags.Inc()
}
