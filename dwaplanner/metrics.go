package dwaplanner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is an optional Prometheus instrumentation sink for a DwaPlanner.
// Every method is nil-safe: a DwaPlanner built without WithMetrics performs
// zero Prometheus calls, so attaching metrics is strictly additive.
type Metrics struct {
	planLatency  prometheus.Histogram
	stallCount   prometheus.Counter
	selectedCost prometheus.Gauge
}

// NewMetrics builds a Metrics sink and registers its three instruments
// (planning-latency histogram, stall counter, selected-cost gauge) with
// registerer.
func NewMetrics(registerer prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		planLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_local_path_seconds",
			Help:      "Wall-clock duration of PlanLocalPath calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		stallCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stall_plans_total",
			Help:      "Number of PlanLocalPath calls that returned a stall plan.",
		}),
		selectedCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "selected_plan_cost",
			Help:      "Weighted cost of the most recently selected plan.",
		}),
	}
	for _, c := range []prometheus.Collector{m.planLatency, m.stallCount, m.selectedCost} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) startTimer() func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() { m.planLatency.Observe(time.Since(start).Seconds()) }
}

func (m *Metrics) recordStall() {
	if m == nil {
		return
	}
	m.stallCount.Inc()
}

func (m *Metrics) recordCost(cost float64) {
	if m == nil {
		return
	}
	m.selectedCost.Set(cost)
}
