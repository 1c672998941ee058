package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting_system/internal/metrics"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// HotlineRepository определяет контракт хранилища номеров экстренных служб
type HotlineRepository interface {
	Seed(ctx context.Context, defaults []models.Hotline) (int, error)
	List(ctx context.Context) ([]*models.Hotline, error)
	Create(ctx context.Context, hotline *models.Hotline) error
	Update(ctx context.Context, hotline *models.Hotline) error
	Delete(ctx context.Context, id string) error
}

// MapLocationRepository определяет контракт хранилища объектов карты
type MapLocationRepository interface {
	Seed(ctx context.Context, defaults []models.MapLocation) (int, error)
	List(ctx context.Context, locationType *models.LocationType) ([]*models.MapLocation, error)
	Create(ctx context.Context, location *models.MapLocation) error
	Update(ctx context.Context, id int, patch models.MapLocationPatch) (*models.MapLocation, error)
	Delete(ctx context.Context, id int) error
}

// ReferenceService определяет контракт справочных данных: номера и объекты карты
type ReferenceService interface {
	EnsureSeeded(ctx context.Context, table models.ReferenceTable) error
	ListHotlines(ctx context.Context) ([]*models.Hotline, error)
	CreateHotline(ctx context.Context, hotline *models.Hotline) error
	UpdateHotline(ctx context.Context, hotline *models.Hotline) error
	DeleteHotline(ctx context.Context, id string) error
	ListLocations(ctx context.Context, locationType *models.LocationType) ([]*models.MapLocation, error)
	CreateLocation(ctx context.Context, location *models.MapLocation) error
	UpdateLocation(ctx context.Context, id int, patch models.MapLocationPatch) (*models.MapLocation, error)
	DeleteLocation(ctx context.Context, id int) error
}

type referenceService struct {
	hotlines  HotlineRepository
	locations MapLocationRepository
	metrics   *metrics.Metrics
	logger    *logrus.Logger
}

func NewReferenceService(hotlines HotlineRepository, locations MapLocationRepository, m *metrics.Metrics, logger *logrus.Logger) ReferenceService {
	return &referenceService{
		hotlines:  hotlines,
		locations: locations,
		metrics:   m,
		logger:    logger,
	}
}

// EnsureSeeded заполняет таблицу набором по умолчанию, если она пуста.
// Безопасен для параллельного вызова и никогда не дополняет непустую таблицу.
func (s *referenceService) EnsureSeeded(ctx context.Context, table models.ReferenceTable) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "reference",
		"method":  "EnsureSeeded",
		"table":   table,
	})

	var (
		inserted int
		err      error
	)
	switch table {
	case models.TableHotlines:
		inserted, err = s.hotlines.Seed(ctx, DefaultHotlines())
	case models.TableMapLocations:
		inserted, err = s.locations.Seed(ctx, DefaultMapLocations())
	default:
		return fmt.Errorf("service: unknown reference table %q", table)
	}
	if err != nil {
		log.WithError(err).Error("Failed to seed reference data")
		return fmt.Errorf("service: could not seed %s: %w", table, err)
	}

	if inserted > 0 {
		s.metrics.ReferenceSeeded.WithLabelValues(string(table)).Add(float64(inserted))
		log.WithField("inserted", inserted).Info("Reference data seeded")
	}
	return nil
}

// ListHotlines возвращает номера, при первом обращении заполняя таблицу
func (s *referenceService) ListHotlines(ctx context.Context) ([]*models.Hotline, error) {
	if err := s.EnsureSeeded(ctx, models.TableHotlines); err != nil {
		return nil, err
	}
	hotlines, err := s.hotlines.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "reference",
			"method":  "ListHotlines",
		}).WithError(err).Error("Failed to list hotlines")
		return nil, fmt.Errorf("service: could not list hotlines: %w", err)
	}
	return hotlines, nil
}

// CreateHotline добавляет номер с новым id
func (s *referenceService) CreateHotline(ctx context.Context, hotline *models.Hotline) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "reference",
		"method":  "CreateHotline",
	})

	if err := validateHotline(hotline); err != nil {
		return err
	}
	hotline.ID = uuid.NewString()
	if err := s.hotlines.Create(ctx, hotline); err != nil {
		log.WithError(err).Error("Failed to create hotline")
		return fmt.Errorf("service: could not create hotline: %w", err)
	}

	log.WithField("hotline_id", hotline.ID).Info("Hotline created")
	return nil
}

// UpdateHotline заменяет поля номера
func (s *referenceService) UpdateHotline(ctx context.Context, hotline *models.Hotline) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "reference",
		"method":     "UpdateHotline",
		"hotline_id": hotline.ID,
	})

	if err := validateHotline(hotline); err != nil {
		return err
	}
	if err := s.hotlines.Update(ctx, hotline); err != nil {
		log.WithError(err).Warn("Failed to update hotline")
		return wrapUnlessDomain("could not update hotline", err)
	}

	log.Info("Hotline updated")
	return nil
}

// DeleteHotline удаляет номер
func (s *referenceService) DeleteHotline(ctx context.Context, id string) error {
	if err := s.hotlines.Delete(ctx, id); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "reference",
			"method":     "DeleteHotline",
			"hotline_id": id,
		}).WithError(err).Warn("Failed to delete hotline")
		return wrapUnlessDomain("could not delete hotline", err)
	}
	return nil
}

// ListLocations возвращает объекты карты, при первом обращении заполняя таблицу
func (s *referenceService) ListLocations(ctx context.Context, locationType *models.LocationType) ([]*models.MapLocation, error) {
	if err := s.EnsureSeeded(ctx, models.TableMapLocations); err != nil {
		return nil, err
	}
	locations, err := s.locations.List(ctx, locationType)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "reference",
			"method":  "ListLocations",
		}).WithError(err).Error("Failed to list map locations")
		return nil, fmt.Errorf("service: could not list map locations: %w", err)
	}
	return locations, nil
}

// CreateLocation добавляет объект карты. Id назначает хранилище.
func (s *referenceService) CreateLocation(ctx context.Context, location *models.MapLocation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "reference",
		"method":  "CreateLocation",
	})

	if !location.Type.IsValid() {
		return models.Invalid("Invalid location type. Must be one of: " + locationTypeList())
	}
	if strings.TrimSpace(location.Name) == "" || strings.TrimSpace(location.Address) == "" {
		return models.Invalid("name and address are required")
	}

	if err := s.locations.Create(ctx, location); err != nil {
		log.WithError(err).Warn("Failed to create map location")
		return wrapUnlessDomain("could not create map location", err)
	}

	log.WithField("location_id", location.ID).Info("Map location created")
	return nil
}

// UpdateLocation применяет частичное обновление объекта карты
func (s *referenceService) UpdateLocation(ctx context.Context, id int, patch models.MapLocationPatch) (*models.MapLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "reference",
		"method":      "UpdateLocation",
		"location_id": id,
	})

	if patch.Type != nil && !patch.Type.IsValid() {
		return nil, models.Invalid("Invalid location type")
	}
	if patch.IsEmpty() {
		return nil, models.Invalid("No fields to update")
	}

	location, err := s.locations.Update(ctx, id, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update map location")
		return nil, wrapUnlessDomain("could not update map location", err)
	}

	log.Info("Map location updated")
	return location, nil
}

// DeleteLocation удаляет объект карты
func (s *referenceService) DeleteLocation(ctx context.Context, id int) error {
	if err := s.locations.Delete(ctx, id); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "reference",
			"method":      "DeleteLocation",
			"location_id": id,
		}).WithError(err).Warn("Failed to delete map location")
		return wrapUnlessDomain("could not delete map location", err)
	}
	return nil
}

func validateHotline(hotline *models.Hotline) error {
	if strings.TrimSpace(hotline.Label) == "" || strings.TrimSpace(hotline.Number) == "" ||
		strings.TrimSpace(hotline.Category) == "" {
		return models.Invalid("label, number and category are required")
	}
	return nil
}

func locationTypeList() string {
	names := make([]string, len(models.LocationTypes))
	for i, t := range models.LocationTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
