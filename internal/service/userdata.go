package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// UserDataRepository определяет контракт хранилища личных данных пользователя
type UserDataRepository interface {
	SavePlan(ctx context.Context, plan *models.EmergencyPlan) (*models.EmergencyPlan, error)
	GetPlan(ctx context.Context, userID string) (*models.EmergencyPlan, error)
	SaveChecklist(ctx context.Context, checklist *models.ChecklistProgress) (*models.ChecklistProgress, error)
	GetChecklist(ctx context.Context, userID string) (*models.ChecklistProgress, error)
}

// UserDataService определяет контракт плана действий и чек-листа пользователя
type UserDataService interface {
	SavePlan(ctx context.Context, userID string, planData json.RawMessage) (*models.EmergencyPlan, error)
	GetPlan(ctx context.Context, userID string) (*models.EmergencyPlan, error)
	SaveChecklist(ctx context.Context, userID string, checklistData json.RawMessage) (*models.ChecklistProgress, error)
	GetChecklist(ctx context.Context, userID string) (*models.ChecklistProgress, error)
}

type userDataService struct {
	repo   UserDataRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewUserDataService(repo UserDataRepository, logger *logrus.Logger) UserDataService {
	return &userDataService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// SavePlan сохраняет план пользователя. plan_data должен быть JSON-объектом.
func (s *userDataService) SavePlan(ctx context.Context, userID string, planData json.RawMessage) (*models.EmergencyPlan, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "userdata",
		"method":  "SavePlan",
		"user_id": userID,
	})

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(planData, &obj); err != nil || obj == nil {
		return nil, models.Invalid("plan_data must be an object")
	}

	plan, err := s.repo.SavePlan(ctx, &models.EmergencyPlan{
		ID:        uuid.NewString(),
		UserID:    userID,
		PlanData:  planData,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		log.WithError(err).Error("Failed to save emergency plan")
		return nil, wrapUnlessDomain("could not save emergency plan", err)
	}

	log.Info("Emergency plan saved")
	return plan, nil
}

// GetPlan возвращает план пользователя или nil
func (s *userDataService) GetPlan(ctx context.Context, userID string) (*models.EmergencyPlan, error) {
	plan, err := s.repo.GetPlan(ctx, userID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "userdata",
			"method":  "GetPlan",
			"user_id": userID,
		}).WithError(err).Error("Failed to get emergency plan")
		return nil, fmt.Errorf("service: could not get emergency plan: %w", err)
	}
	return plan, nil
}

// SaveChecklist сохраняет отметки чек-листа. checklist_data должен быть JSON-массивом объектов.
func (s *userDataService) SaveChecklist(ctx context.Context, userID string, checklistData json.RawMessage) (*models.ChecklistProgress, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "userdata",
		"method":  "SaveChecklist",
		"user_id": userID,
	})

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(checklistData, &items); err != nil || items == nil {
		return nil, models.Invalid("checklist_data must be an array of objects")
	}

	checklist, err := s.repo.SaveChecklist(ctx, &models.ChecklistProgress{
		ID:            uuid.NewString(),
		UserID:        userID,
		ChecklistData: checklistData,
		UpdatedAt:     s.now().UTC(),
	})
	if err != nil {
		log.WithError(err).Error("Failed to save checklist")
		return nil, wrapUnlessDomain("could not save checklist", err)
	}

	log.Info("Checklist saved")
	return checklist, nil
}

// GetChecklist возвращает отметки пользователя или nil
func (s *userDataService) GetChecklist(ctx context.Context, userID string) (*models.ChecklistProgress, error) {
	checklist, err := s.repo.GetChecklist(ctx, userID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "userdata",
			"method":  "GetChecklist",
			"user_id": userID,
		}).WithError(err).Error("Failed to get checklist")
		return nil, fmt.Errorf("service: could not get checklist: %w", err)
	}
	return checklist, nil
}
