package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/shenikar/incident_reporting_system/pkg/postgres"
)

var incidentColumns = []string{
	"id",
	"incident_type",
	"date",
	"time",
	"latitude",
	"longitude",
	"description",
	"reporter_phone",
	"reporter_name",
	"images",
	"internal_notes",
	"status",
	"created_at",
}

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

// Create сохраняет инцидент. Если инцидент с таким id уже есть, запись не меняется,
// возвращается сохраненная версия и created=false.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) (*models.Incident, bool, error) {
	query := `
		INSERT INTO incidents (
			id, incident_type, date, time, latitude, longitude, description,
			reporter_phone, reporter_name, images, internal_notes, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO NOTHING;
	`
	cmdTag, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, query,
		incident.ID,
		incident.IncidentType,
		incident.Date,
		incident.Time,
		incident.Latitude,
		incident.Longitude,
		incident.Description,
		incident.ReporterPhone,
		incident.ReporterName,
		incident.Images,
		incident.InternalNotes,
		incident.Status,
		incident.CreatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		existing, err := r.GetByID(ctx, incident.ID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return incident, true, nil
}

// GetByID возвращает инцидент по идентификатору
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	query, args, err := psql.Select(incidentColumns...).
		From("incidents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build incident query: %w", err)
	}

	incident := &models.Incident{}
	if err := pgxscan.Get(ctx, postgres.QuerierFrom(ctx, r.db), incident, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, models.NotFound("Incident not found")
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// List возвращает инциденты, отсортированные от новых к старым
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	builder := psql.Select(incidentColumns...).
		From("incidents").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"incident_type": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"reporter_phone": pattern},
		})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build incident list query: %w", err)
	}

	incidents := make([]*models.Incident, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFrom(ctx, r.db), &incidents, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return incidents, nil
}

// Update применяет к инциденту только переданные поля патча
func (r *IncidentRepository) Update(ctx context.Context, id string, patch models.IncidentPatch) (*models.Incident, error) {
	builder := psql.Update("incidents").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(incidentColumns, ", "))

	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.InternalNotes != nil {
		builder = builder.Set("internal_notes", *patch.InternalNotes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build incident update query: %w", err)
	}

	incident := &models.Incident{}
	if err := pgxscan.Get(ctx, postgres.QuerierFrom(ctx, r.db), incident, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, models.NotFound("Incident not found")
		}
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}
	return incident, nil
}

// Delete удаляет инцидент вместе с его подтверждениями
func (r *IncidentRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.NotFound("Incident not found")
	}
	return nil
}
