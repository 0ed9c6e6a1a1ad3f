package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds bot counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	weatherRequests *prometheus.CounterVec
	deliveries      *prometheus.CounterVec
	schedulerRuns   prometheus.Counter
}

// New creates counters and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		weatherRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherbot_weather_requests_total",
				Help: "Total number of weather lookups, labeled by result.",
			},
			[]string{"result"}, // 'ok', 'not_found'
		),
		deliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherbot_daily_deliveries_total",
				Help: "Total number of daily weather messages, labeled by status.",
			},
			[]string{"status"}, // 'sent', 'failed'
		),
		schedulerRuns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "weatherbot_scheduler_runs_total",
				Help: "Total number of completed daily notification runs.",
			},
		),
	}
	reg.MustRegister(m.weatherRequests, m.deliveries, m.schedulerRuns)
	return m
}

// ObserveWeather records a weather lookup
func (m *Metrics) ObserveWeather(found bool) {
	if m == nil {
		return
	}
	if found {
		m.weatherRequests.WithLabelValues("ok").Inc()
		return
	}
	m.weatherRequests.WithLabelValues("not_found").Inc()
}

// ObserveDelivery records a daily message delivery attempt
func (m *Metrics) ObserveDelivery(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.deliveries.WithLabelValues("failed").Inc()
		return
	}
	m.deliveries.WithLabelValues("sent").Inc()
}

// ObserveSchedulerRun records a finished scheduler run
func (m *Metrics) ObserveSchedulerRun() {
	if m == nil {
		return
	}
	m.schedulerRuns.Inc()
}
