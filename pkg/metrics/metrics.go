// Package metrics records evaluation outcomes as Prometheus metrics and writes
// them in the node_exporter textfile collector format.
package metrics

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
)

// Recorder owns a private registry so recordings never leak into the
// default global one.
type Recorder struct {
	registry    *prometheus.Registry
	aggregate   *prometheus.GaugeVec
	adjusted    *prometheus.GaugeVec
	conclusions *prometheus.CounterVec
	share       *prometheus.GaugeVec
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		aggregate: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "flightrisk",
			Name:      "aggregate_score",
			Help:      "Aggregate score S(P) before threat adjustment.",
		}, []string{"scenario", "threat"}),
		adjusted: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "flightrisk",
			Name:      "adjusted_score",
			Help:      "Threat-adjusted score r(P).",
		}, []string{"scenario", "threat"}),
		conclusions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flightrisk",
			Name:      "conclusions_total",
			Help:      "Evaluations by linguistic conclusion.",
		}, []string{"conclusion"}),
		share: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "flightrisk",
			Name:      "criterion_share",
			Help:      "Share of each criterion in the complement-weighted aggregate.",
		}, []string{"scenario", "threat", "criterion"}),
	}
}

// Record stores one evaluation result.
func (r *Recorder) Record(res interfaces.EvaluationResult) {
	s, th := string(res.Scenario), string(res.Threat)
	r.aggregate.WithLabelValues(s, th).Set(res.Aggregate)
	r.adjusted.WithLabelValues(s, th).Set(res.Adjusted)
	r.conclusions.WithLabelValues(string(res.Conclusion)).Inc()
	for _, c := range res.Contributions {
		r.share.WithLabelValues(s, th, string(c.Criterion)).Set(c.Share)
	}
}

// Registry exposes the underlying registry, e.g. for gathering in tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile atomically writes all recorded metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return goerr.Wrap(err, "failed to write metrics textfile", goerr.V("path", path))
	}
	return nil
}
