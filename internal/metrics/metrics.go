package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics - счетчики жизненного цикла инцидентов
type Metrics struct {
	IncidentsSubmitted *prometheus.CounterVec
	StatusChanges      *prometheus.CounterVec
	Validations        *prometheus.CounterVec
	ReferenceSeeded    *prometheus.CounterVec
	EventsPublished    *prometheus.CounterVec
}

// New регистрирует метрики в reg. В main передается prometheus.DefaultRegisterer,
// в тестах - отдельный реестр.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		IncidentsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "incident_submissions_total",
			Help: "Incident submissions by result (created or replayed)",
		}, []string{"result"}),
		StatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "incident_status_changes_total",
			Help: "Moderation status changes by target status",
		}, []string{"status"}),
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "incident_validations_total",
			Help: "Crowd validations by outcome (created, updated, removed)",
		}, []string{"outcome"}),
		ReferenceSeeded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reference_rows_seeded_total",
			Help: "Rows inserted by the reference-data seeder",
		}, []string{"table"}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "incident_events_published_total",
			Help: "Incident events queued for webhook delivery by result",
		}, []string{"result"}),
	}
}

// NewNop возвращает метрики, не привязанные ни к одному реестру
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
