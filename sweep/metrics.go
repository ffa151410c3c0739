package sweep

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records sweep progress. Collectors are registered on the
// Registerer given to NewMetrics.
type Metrics struct {
	trials   *prometheus.CounterVec
	correct  *prometheus.CounterVec
	duration prometheus.Histogram
	accuracy *prometheus.GaugeVec
}

// NewMetrics creates and registers the sweep collectors on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pentti",
			Subsystem: "sweep",
			Name:      "trials_total",
			Help:      "Trials run, each with a freshly sampled codebook.",
		}, []string{"sparsity"}),
		correct: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pentti",
			Subsystem: "sweep",
			Name:      "correct_total",
			Help:      "Queries that recovered the expected symbol.",
		}, []string{"query", "sparsity"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pentti",
			Subsystem: "sweep",
			Name:      "trial_duration_seconds",
			Help:      "Wall time of one trial including codebook construction.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		accuracy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pentti",
			Subsystem: "sweep",
			Name:      "accuracy_ratio",
			Help:      "Fraction of trials answering a query correctly.",
		}, []string{"query", "dims", "sparsity"}),
	}
	for _, c := range []prometheus.Collector{m.trials, m.correct, m.duration, m.accuracy} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeTrial(sparsity float64, seconds float64, correct map[string]bool) {
	if m == nil {
		return
	}
	sp := formatFloat(sparsity)
	m.trials.WithLabelValues(sp).Inc()
	m.duration.Observe(seconds)
	for q, ok := range correct {
		if ok {
			m.correct.WithLabelValues(q, sp).Inc()
		}
	}
}

func (m *Metrics) setAccuracy(query string, dims int, sparsity, acc float64) {
	if m == nil {
		return
	}
	m.accuracy.WithLabelValues(query, strconv.Itoa(dims), formatFloat(sparsity)).Set(acc)
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
