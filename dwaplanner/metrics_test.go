package dwaplanner

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.viam.com/test"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	stop := m.startTimer()
	stop()
	m.recordStall()
	m.recordCost(1.5)
}

func TestMetricsRecordsObservations(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewMetrics(registry, "gridnav_test")
	test.That(t, err, test.ShouldBeNil)

	stop := m.startTimer()
	stop()
	m.recordStall()
	m.recordCost(3.0)

	families, err := registry.Gather()
	test.That(t, err, test.ShouldBeNil)

	var sawStall, sawCost, sawLatency bool
	for _, fam := range families {
		switch fam.GetName() {
		case "gridnav_test_stall_plans_total":
			sawStall = true
			test.That(t, fam.GetMetric()[0].GetCounter().GetValue(), test.ShouldEqual, float64(1))
		case "gridnav_test_selected_plan_cost":
			sawCost = true
			test.That(t, fam.GetMetric()[0].GetGauge().GetValue(), test.ShouldEqual, 3.0)
		case "gridnav_test_plan_local_path_seconds":
			sawLatency = true
			test.That(t, fam.GetMetric()[0].GetHistogram().GetSampleCount(), test.ShouldEqual, uint64(1))
		}
	}
	test.That(t, sawStall, test.ShouldBeTrue)
	test.That(t, sawCost, test.ShouldBeTrue)
	test.That(t, sawLatency, test.ShouldBeTrue)
}

func TestNewMetricsRejectsDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewMetrics(registry, "gridnav_test")
	test.That(t, err, test.ShouldBeNil)
	_, err = NewMetrics(registry, "gridnav_test")
	test.That(t, err, test.ShouldNotBeNil)
}
