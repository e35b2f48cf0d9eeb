package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// ValidationsTotal результаты проверки бронирований (valid / invalid)
	ValidationsTotal *prometheus.CounterVec

	// CouplesAttemptsTotal попытки фиксации парных бронирований по исходу
	CouplesAttemptsTotal *prometheus.CounterVec

	// CommitConflictsTotal конфликты при фиксации (проигранная гонка)
	CommitConflictsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном registry prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		ValidationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validations_total",
			Help:        "Total number of booking validations by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		CouplesAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "couples_commit_attempts_total",
			Help:        "Total number of couples booking commit attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		CommitConflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_commit_conflicts_total",
			Help:        "Total number of booking commits rejected by a concurrent reservation",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ValidationsTotal,
		m.CouplesAttemptsTotal,
		m.CommitConflictsTotal,
	)

	return m
}

// ObserveValidation учитывает результат проверки бронирования
// nil-safe: метрики могут быть выключены в конфигурации
func (m *Metrics) ObserveValidation(valid bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.ValidationsTotal.WithLabelValues(result).Inc()
}

// ObserveCouplesAttempt учитывает исход попытки фиксации парного бронирования
func (m *Metrics) ObserveCouplesAttempt(outcome string) {
	if m == nil {
		return
	}
	m.CouplesAttemptsTotal.WithLabelValues(outcome).Inc()
}

// ObserveCommitConflict учитывает проигранную гонку при фиксации
func (m *Metrics) ObserveCommitConflict(kind string) {
	if m == nil {
		return
	}
	m.CommitConflictsTotal.WithLabelValues(kind).Inc()
}
