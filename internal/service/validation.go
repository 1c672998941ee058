package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting_system/internal/metrics"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ValidationRepository определяет контракт хранилища голосов
type ValidationRepository interface {
	Insert(ctx context.Context, v *models.Validation) error
	UpdateType(ctx context.Context, incidentID, userID string, validationType models.ValidationType) error
	Delete(ctx context.Context, incidentID, userID string) error
	CountByType(ctx context.Context, incidentID string) ([]models.ValidationCount, error)
	FindForUser(ctx context.Context, incidentID, userID string) (*models.Validation, error)
}

// ValidationService определяет контракт подтверждения инцидентов пользователями
type ValidationService interface {
	Validate(ctx context.Context, incidentID, userID string, validationType models.ValidationType) (models.ValidationOutcome, error)
	Stats(ctx context.Context, incidentID string, callerID *string) (*models.ValidationStats, error)
	Remove(ctx context.Context, incidentID, userID string) error
}

type validationService struct {
	repo    ValidationRepository
	metrics *metrics.Metrics
	logger  *logrus.Logger
	now     func() time.Time
}

func NewValidationService(repo ValidationRepository, m *metrics.Metrics, logger *logrus.Logger) ValidationService {
	return &validationService{
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Validate записывает голос пользователя. Первый голос создает запись, повторный
// меняет ее вид. Гонку одновременных голосов разрешает уникальное ограничение
// (incident_id, user_id): проигравшая вставка превращается в обновление.
func (s *validationService) Validate(ctx context.Context, incidentID, userID string, validationType models.ValidationType) (models.ValidationOutcome, error) {
	if validationType == "" {
		validationType = models.ValidationConfirm
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":         "validation",
		"method":          "Validate",
		"incident_id":     incidentID,
		"user_id":         userID,
		"validation_type": validationType,
	})

	if !validationType.IsValid() {
		log.Warn("Invalid validation type")
		return "", models.Invalid("Invalid validation type")
	}

	err := s.repo.Insert(ctx, &models.Validation{
		ID:             uuid.NewString(),
		IncidentID:     incidentID,
		UserID:         userID,
		ValidationType: validationType,
		CreatedAt:      s.now().UTC(),
	})
	if err == nil {
		s.metrics.Validations.WithLabelValues(string(models.ValidationCreated)).Inc()
		log.Info("Incident validated")
		return models.ValidationCreated, nil
	}
	if !errors.Is(err, models.ErrConflict) {
		log.WithError(err).Warn("Failed to insert validation")
		return "", wrapUnlessDomain("could not validate incident", err)
	}

	if err := s.repo.UpdateType(ctx, incidentID, userID, validationType); err != nil {
		log.WithError(err).Warn("Failed to update validation")
		return "", wrapUnlessDomain("could not update validation", err)
	}

	s.metrics.Validations.WithLabelValues(string(models.ValidationUpdated)).Inc()
	log.Info("Validation updated")
	return models.ValidationUpdated, nil
}

// Stats возвращает количество голосов по видам. Итог всегда равен сумме по видам.
func (s *validationService) Stats(ctx context.Context, incidentID string, callerID *string) (*models.ValidationStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "validation",
		"method":      "Stats",
		"incident_id": incidentID,
	})

	counts, err := s.repo.CountByType(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to count validations")
		return nil, fmt.Errorf("service: could not get validation stats: %w", err)
	}

	stats := &models.ValidationStats{
		IncidentID:   incidentID,
		CountsByType: make(map[models.ValidationType]int, len(counts)),
	}
	for _, c := range counts {
		stats.CountsByType[c.ValidationType] += c.Count
		stats.TotalValidations += c.Count
	}

	if callerID != nil && *callerID != "" {
		own, err := s.repo.FindForUser(ctx, incidentID, *callerID)
		if err != nil {
			log.WithError(err).Error("Failed to load caller validation")
			return nil, fmt.Errorf("service: could not get validation stats: %w", err)
		}
		if own != nil {
			stats.CallerHasValidated = true
			validationType := own.ValidationType
			stats.CallerValidationType = &validationType
		}
	}

	return stats, nil
}

// Remove удаляет голос пользователя. Повторное удаление возвращает NotFound.
func (s *validationService) Remove(ctx context.Context, incidentID, userID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "validation",
		"method":      "Remove",
		"incident_id": incidentID,
		"user_id":     userID,
	})

	if err := s.repo.Delete(ctx, incidentID, userID); err != nil {
		log.WithError(err).Warn("Failed to remove validation")
		return wrapUnlessDomain("could not remove validation", err)
	}

	s.metrics.Validations.WithLabelValues("removed").Inc()
	log.Info("Validation removed")
	return nil
}
