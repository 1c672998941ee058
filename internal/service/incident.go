package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/incident_reporting_system/internal/metrics"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	publicIncidentLimit = 100
	adminIncidentLimit  = 500
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) (*models.Incident, bool, error)
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	Update(ctx context.Context, id string, patch models.IncidentPatch) (*models.Incident, error)
	Delete(ctx context.Context, id string) error
}

// IncidentService определяет контракт приема отчетов и модерации
type IncidentService interface {
	Submit(ctx context.Context, sub models.IncidentSubmission) (*models.Incident, bool, error)
	ListPublic(ctx context.Context) ([]*models.Incident, error)
	AdminList(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	AdminGet(ctx context.Context, id string) (*models.Incident, error)
	Update(ctx context.Context, id string, patch models.IncidentPatch) (*models.Incident, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, filter models.IncidentFilter) ([]byte, error)
}

type incidentService struct {
	repo      IncidentRepository
	publisher webhook.Publisher
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	now       func() time.Time
}

func NewIncidentService(repo IncidentRepository, publisher webhook.Publisher, m *metrics.Metrics, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit нормализует отчет и сохраняет его. Повторная отправка с тем же id
// возвращает сохраненную запись и created=false.
func (s *incidentService) Submit(ctx context.Context, sub models.IncidentSubmission) (*models.Incident, bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Submit",
	})

	incident, err := NormalizeIncident(sub, s.now())
	if err != nil {
		log.WithError(err).Warn("Rejected incident payload")
		return nil, false, err
	}
	log = log.WithField("incident_id", incident.ID)
	log.Info("Attempting to create a new incident")

	stored, created, err := s.repo.Create(ctx, incident)
	if err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, false, fmt.Errorf("service: could not create incident: %w", err)
	}

	if !created {
		s.metrics.IncidentsSubmitted.WithLabelValues("replayed").Inc()
		log.Info("Incident already exists, returning stored record")
		return stored, false, nil
	}

	s.metrics.IncidentsSubmitted.WithLabelValues("created").Inc()
	s.publish(ctx, log, models.NewIncidentEvent(models.EventIncidentCreated, stored, s.now()))

	log.Info("Incident created successfully")
	return stored, true, nil
}

// ListPublic возвращает последние инциденты для публичной ленты
func (s *incidentService) ListPublic(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListPublic",
	})

	incidents, err := s.repo.List(ctx, models.IncidentFilter{Limit: publicIncidentLimit})
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// AdminList возвращает инциденты с фильтром по статусу и строке поиска
func (s *incidentService) AdminList(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "AdminList",
		"query":   filter.Query,
	})

	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, models.Invalid("Invalid status")
	}
	if filter.Limit <= 0 || filter.Limit > adminIncidentLimit {
		filter.Limit = adminIncidentLimit
	}

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// AdminGet получает инцидент по ID
func (s *incidentService) AdminGet(ctx context.Context, id string) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "incident",
			"method":      "AdminGet",
			"incident_id": id,
		}).WithError(err).Warn("Failed to get incident")
		return nil, wrapUnlessDomain("could not get incident", err)
	}
	return incident, nil
}

// Update меняет статус модерации и/или внутренние заметки.
// Допустим переход из любого статуса в любой.
func (s *incidentService) Update(ctx context.Context, id string, patch models.IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Update",
		"incident_id": id,
	})

	if err := patch.Validate(); err != nil {
		log.WithError(err).Warn("Invalid incident patch")
		return nil, err
	}

	incident, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident")
		return nil, wrapUnlessDomain("could not update incident", err)
	}

	if patch.Status != nil {
		s.metrics.StatusChanges.WithLabelValues(string(*patch.Status)).Inc()
		s.publish(ctx, log, models.NewIncidentEvent(models.EventIncidentStatusChanged, incident, s.now()))
	}

	log.Info("Incident updated successfully")
	return incident, nil
}

// Delete удаляет инцидент
func (s *incidentService) Delete(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Delete",
		"incident_id": id,
	})

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident")
		return wrapUnlessDomain("could not delete incident", err)
	}

	log.Info("Incident deleted successfully")
	return nil
}

// publish ставит событие в очередь. Ошибка доставки не влияет на результат запроса.
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, event models.IncidentEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.EventsPublished.WithLabelValues("failed").Inc()
		log.WithError(err).WithField("event_type", event.Type).Error("Failed to publish incident event")
		return
	}
	s.metrics.EventsPublished.WithLabelValues("queued").Inc()
}
