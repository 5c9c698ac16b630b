package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking wizard.
type BookingMetrics struct {
	sessionsTotal      *prometheus.CounterVec
	transitionsTotal   *prometheus.CounterVec
	confirmationsTotal prometheus.Counter
	sinkFailuresTotal  *prometheus.CounterVec
	slotsPerDay        prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		sessionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tvmount",
			Subsystem: "booking",
			Name:      "sessions_total",
			Help:      "Booking sessions by lifecycle event",
		}, []string{"event"}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tvmount",
			Subsystem: "booking",
			Name:      "transitions_total",
			Help:      "Booking wizard events by type and outcome",
		}, []string{"event", "result"}),
		confirmationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tvmount",
			Subsystem: "booking",
			Name:      "confirmations_total",
			Help:      "Bookings that reached the confirmed step",
		}),
		sinkFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tvmount",
			Subsystem: "booking",
			Name:      "confirmation_sink_failures_total",
			Help:      "Confirmation deliveries that failed downstream",
		}, []string{"sink"}),
		slotsPerDay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tvmount",
			Subsystem: "availability",
			Name:      "slots_per_day",
			Help:      "Number of slots retained per generated day",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsTotal, m.transitionsTotal, m.confirmationsTotal, m.sinkFailuresTotal, m.slotsPerDay)
	return m
}

// ObserveSession counts a session lifecycle event (started, restarted, abandoned).
func (m *BookingMetrics) ObserveSession(event string) {
	if m == nil {
		return
	}
	m.sessionsTotal.WithLabelValues(event).Inc()
}

func (m *BookingMetrics) ObserveTransition(event string, applied bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if applied {
		result = "applied"
	}
	m.transitionsTotal.WithLabelValues(event, result).Inc()
}

func (m *BookingMetrics) ObserveConfirmation() {
	if m == nil {
		return
	}
	m.confirmationsTotal.Inc()
}

func (m *BookingMetrics) ObserveSinkFailure(sink string) {
	if m == nil {
		return
	}
	m.sinkFailuresTotal.WithLabelValues(sink).Inc()
}

func (m *BookingMetrics) ObserveSlots(count int) {
	if m == nil {
		return
	}
	m.slotsPerDay.Observe(float64(count))
}
