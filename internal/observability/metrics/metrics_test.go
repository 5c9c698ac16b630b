package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveSession("started")
	m.ObserveTransition("advance", true)
	m.ObserveTransition("advance", false)
	m.ObserveTransition("advance", false)
	m.ObserveConfirmation()
	m.ObserveSinkFailure("email")
	m.ObserveSlots(3)

	if got := testutil.ToFloat64(m.transitionsTotal.WithLabelValues("advance", "rejected")); got != 2 {
		t.Fatalf("expected 2 rejected advances, got %v", got)
	}
	if got := testutil.ToFloat64(m.confirmationsTotal); got != 1 {
		t.Fatalf("expected 1 confirmation, got %v", got)
	}
	if got := testutil.ToFloat64(m.sinkFailuresTotal.WithLabelValues("email")); got != 1 {
		t.Fatalf("expected 1 sink failure, got %v", got)
	}
}

func TestBookingMetricsHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveSlots(0)
	m.ObserveSlots(5)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var hist *dto.Histogram
	for _, mf := range families {
		if mf.GetName() == "tvmount_availability_slots_per_day" {
			hist = mf.GetMetric()[0].GetHistogram()
		}
	}
	if hist == nil {
		t.Fatal("slots_per_day histogram not registered")
	}
	if hist.GetSampleCount() != 2 {
		t.Fatalf("expected 2 samples, got %d", hist.GetSampleCount())
	}
	if hist.GetSampleSum() != 5 {
		t.Fatalf("expected sum 5, got %v", hist.GetSampleSum())
	}
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveSession("started")
	m.ObserveTransition("submit", true)
	m.ObserveConfirmation()
	m.ObserveSinkFailure("queue")
	m.ObserveSlots(2)
}
