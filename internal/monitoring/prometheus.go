package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rotisserie/eris"
)

const namespace = "college_select"

// Metrics holds the run metrics on a private registry, so a run exports only
// its own series.
type Metrics struct {
	registry       *prometheus.Registry
	stageRemaining *prometheus.GaugeVec
	joined         prometheus.Gauge
	unrankable     prometheus.Gauge
	ranked         prometheus.Gauge
	runSeconds     prometheus.Histogram
}

// NewMetrics registers the run metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)

	return &Metrics{
		registry: reg,
		stageRemaining: auto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_remaining",
			Help:      "Records remaining after each filter stage",
		}, []string{"stage"}),
		joined: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "joined",
			Help:      "Records in the joined exam-results table",
		}),
		unrankable: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unrankable",
			Help:      "Filtered records excluded for lack of coordinates",
		}),
		ranked: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ranked",
			Help:      "Records in the ranked output",
		}),
		runSeconds: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_seconds",
			Help:      "Wall time of a selection run in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}),
	}
}

// Observe records a run snapshot.
func (m *Metrics) Observe(snap *RunSnapshot) {
	for _, s := range snap.Stages {
		m.stageRemaining.WithLabelValues(s.Stage).Set(float64(s.Out))
	}
	m.joined.Set(float64(snap.Joined))
	m.unrankable.Set(float64(snap.Unrankable))
	m.ranked.Set(float64(snap.Ranked))
	m.runSeconds.Observe(snap.Duration.Seconds())
}

// WriteTextfile writes the metrics in the text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return eris.Wrapf(err, "monitoring: write metrics %s", path)
	}
	return nil
}
