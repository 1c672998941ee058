package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/shenikar/incident_reporting_system/pkg/postgres"
)

var mapLocationColumns = []string{
	"id", "type", "name", "address", "lat", "lng", "capacity", "services", "hotline",
}

type MapLocationRepository struct {
	db *pgxpool.Pool
}

func NewMapLocationRepository(db *pgxpool.Pool) service.MapLocationRepository {
	return &MapLocationRepository{db: db}
}

// Seed заполняет таблицу объектами по умолчанию, если она пуста
func (r *MapLocationRepository) Seed(ctx context.Context, defaults []models.MapLocation) (int, error) {
	batch := &pgx.Batch{}
	for _, l := range defaults {
		batch.Queue(`
			INSERT INTO map_locations (id, type, name, address, lat, lng, capacity, services, hotline)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING;
		`, l.ID, l.Type, l.Name, l.Address, l.Lat, l.Lng, l.Capacity, l.Services, l.Hotline)
	}
	return seedTable(ctx, postgres.QuerierFrom(ctx, r.db), models.TableMapLocations, batch)
}

// List возвращает объекты по возрастанию id, опционально только заданного типа
func (r *MapLocationRepository) List(ctx context.Context, locationType *models.LocationType) ([]*models.MapLocation, error) {
	builder := psql.Select(mapLocationColumns...).From("map_locations").OrderBy("id")
	if locationType != nil {
		builder = builder.Where(squirrel.Eq{"type": *locationType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build location list query: %w", err)
	}

	locations := make([]*models.MapLocation, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFrom(ctx, r.db), &locations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list map locations: %w", err)
	}
	return locations, nil
}

// Create добавляет объект. Идентификатор вычисляется как max(id)+1 в том же запросе;
// при одновременной вставке проигравший получает ErrConflict.
func (r *MapLocationRepository) Create(ctx context.Context, location *models.MapLocation) error {
	query := `
		INSERT INTO map_locations (id, type, name, address, lat, lng, capacity, services, hotline)
		SELECT COALESCE(MAX(id), 0) + 1, $1::text, $2::text, $3::text,
			$4::double precision, $5::double precision, $6::text, $7::text, $8::text
		FROM map_locations
		RETURNING id;
	`
	err := postgres.QuerierFrom(ctx, r.db).QueryRow(ctx, query,
		location.Type,
		location.Name,
		location.Address,
		location.Lat,
		location.Lng,
		location.Capacity,
		location.Services,
		location.Hotline,
	).Scan(&location.ID)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return models.Conflict("Location id already taken, retry")
		}
		return fmt.Errorf("failed to create map location: %w", err)
	}
	return nil
}

// Update применяет к объекту только переданные поля
func (r *MapLocationRepository) Update(ctx context.Context, id int, patch models.MapLocationPatch) (*models.MapLocation, error) {
	builder := psql.Update("map_locations").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(mapLocationColumns, ", "))

	if patch.Type != nil {
		builder = builder.Set("type", *patch.Type)
	}
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Address != nil {
		builder = builder.Set("address", *patch.Address)
	}
	if patch.Lat != nil {
		builder = builder.Set("lat", *patch.Lat)
	}
	if patch.Lng != nil {
		builder = builder.Set("lng", *patch.Lng)
	}
	if patch.Capacity != nil {
		builder = builder.Set("capacity", *patch.Capacity)
	}
	if patch.Services != nil {
		builder = builder.Set("services", *patch.Services)
	}
	if patch.Hotline != nil {
		builder = builder.Set("hotline", *patch.Hotline)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build location update query: %w", err)
	}

	location := &models.MapLocation{}
	if err := pgxscan.Get(ctx, postgres.QuerierFrom(ctx, r.db), location, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, models.NotFound("Location not found")
		}
		return nil, fmt.Errorf("failed to update map location: %w", err)
	}
	return location, nil
}

// Delete удаляет объект
func (r *MapLocationRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, `DELETE FROM map_locations WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete map location: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.NotFound("Location not found")
	}
	return nil
}
