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

type ValidationRepository struct {
	db *pgxpool.Pool
}

func NewValidationRepository(db *pgxpool.Pool) service.ValidationRepository {
	return &ValidationRepository{db: db}
}

// Insert добавляет голос. Повторный голос того же пользователя возвращает ErrConflict,
// голос за несуществующий инцидент - ErrNotFound.
func (r *ValidationRepository) Insert(ctx context.Context, v *models.Validation) error {
	query := `
		INSERT INTO incident_validations (id, incident_id, user_id, validation_type, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, query,
		v.ID,
		v.IncidentID,
		v.UserID,
		v.ValidationType,
		v.CreatedAt,
	)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return models.Conflict("Incident already validated by user")
		}
		if isForeignKeyViolation(err) {
			return models.NotFound("Incident not found")
		}
		return fmt.Errorf("failed to insert validation: %w", err)
	}
	return nil
}

// UpdateType меняет вид существующего голоса
func (r *ValidationRepository) UpdateType(ctx context.Context, incidentID, userID string, validationType models.ValidationType) error {
	query := `
		UPDATE incident_validations SET validation_type = $1
		WHERE incident_id = $2 AND user_id = $3;
	`
	cmdTag, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, query, validationType, incidentID, userID)
	if err != nil {
		return fmt.Errorf("failed to update validation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.NotFound("Validation not found")
	}
	return nil
}

// Delete удаляет голос пользователя
func (r *ValidationRepository) Delete(ctx context.Context, incidentID, userID string) error {
	query := `DELETE FROM incident_validations WHERE incident_id = $1 AND user_id = $2;`
	cmdTag, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, query, incidentID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete validation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.NotFound("Validation not found")
	}
	return nil
}

// CountByType возвращает количество голосов каждого вида
func (r *ValidationRepository) CountByType(ctx context.Context, incidentID string) ([]models.ValidationCount, error) {
	query := `
		SELECT validation_type, COUNT(*) AS count
		FROM incident_validations
		WHERE incident_id = $1
		GROUP BY validation_type;
	`
	counts := make([]models.ValidationCount, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFrom(ctx, r.db), &counts, query, incidentID); err != nil {
		return nil, fmt.Errorf("failed to count validations: %w", err)
	}
	return counts, nil
}

// FindForUser возвращает голос пользователя или nil, если его нет
func (r *ValidationRepository) FindForUser(ctx context.Context, incidentID, userID string) (*models.Validation, error) {
	query := `
		SELECT id, incident_id, user_id, validation_type, created_at
		FROM incident_validations
		WHERE incident_id = $1 AND user_id = $2;
	`
	v := &models.Validation{}
	if err := pgxscan.Get(ctx, postgres.QuerierFrom(ctx, r.db), v, query, incidentID, userID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user validation: %w", err)
	}
	return v, nil
}
