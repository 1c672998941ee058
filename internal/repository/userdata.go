package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/shenikar/incident_reporting_system/pkg/postgres"
)

type UserDataRepository struct {
	db *pgxpool.Pool
}

func NewUserDataRepository(db *pgxpool.Pool) service.UserDataRepository {
	return &UserDataRepository{db: db}
}

// SavePlan создает или заменяет план пользователя
func (r *UserDataRepository) SavePlan(ctx context.Context, plan *models.EmergencyPlan) (*models.EmergencyPlan, error) {
	query := `
		INSERT INTO emergency_plans (id, user_id, plan_data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
			SET plan_data = EXCLUDED.plan_data, updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, plan_data, updated_at;
	`
	saved := &models.EmergencyPlan{}
	err := pgxscan.Get(ctx, postgres.QuerierFrom(ctx, r.db), saved, query,
		plan.ID,
		plan.UserID,
		plan.PlanData,
		plan.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, models.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to save emergency plan: %w", err)
	}
	return saved, nil
}

// GetPlan возвращает план пользователя или nil, если он не сохранялся
func (r *UserDataRepository) GetPlan(ctx context.Context, userID string) (*models.EmergencyPlan, error) {
	query := `SELECT id, user_id, plan_data, updated_at FROM emergency_plans WHERE user_id = $1;`
	plan := &models.EmergencyPlan{}
	if err := pgxscan.Get(ctx, postgres.QuerierFrom(ctx, r.db), plan, query, userID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emergency plan: %w", err)
	}
	return plan, nil
}

// SaveChecklist создает или заменяет отметки чек-листа пользователя
func (r *UserDataRepository) SaveChecklist(ctx context.Context, checklist *models.ChecklistProgress) (*models.ChecklistProgress, error) {
	query := `
		INSERT INTO checklists (id, user_id, checklist_data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
			SET checklist_data = EXCLUDED.checklist_data, updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, checklist_data, updated_at;
	`
	saved := &models.ChecklistProgress{}
	err := pgxscan.Get(ctx, postgres.QuerierFrom(ctx, r.db), saved, query,
		checklist.ID,
		checklist.UserID,
		checklist.ChecklistData,
		checklist.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, models.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to save checklist: %w", err)
	}
	return saved, nil
}

// GetChecklist возвращает отметки пользователя или nil
func (r *UserDataRepository) GetChecklist(ctx context.Context, userID string) (*models.ChecklistProgress, error) {
	query := `SELECT id, user_id, checklist_data, updated_at FROM checklists WHERE user_id = $1;`
	checklist := &models.ChecklistProgress{}
	if err := pgxscan.Get(ctx, postgres.QuerierFrom(ctx, r.db), checklist, query, userID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return checklist, nil
}
