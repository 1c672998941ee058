package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/shenikar/incident_reporting_system/pkg/postgres"
)

type HotlineRepository struct {
	db *pgxpool.Pool
}

func NewHotlineRepository(db *pgxpool.Pool) service.HotlineRepository {
	return &HotlineRepository{db: db}
}

// Seed заполняет таблицу набором по умолчанию, если в ней нет ни одной записи.
// Возвращает количество вставленных строк.
func (r *HotlineRepository) Seed(ctx context.Context, defaults []models.Hotline) (int, error) {
	batch := &pgx.Batch{}
	for _, h := range defaults {
		batch.Queue(`
			INSERT INTO hotlines (id, label, number, category)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING;
		`, h.ID, h.Label, h.Number, h.Category)
	}
	return seedTable(ctx, postgres.QuerierFrom(ctx, r.db), models.TableHotlines, batch)
}

// List возвращает все номера
func (r *HotlineRepository) List(ctx context.Context) ([]*models.Hotline, error) {
	hotlines := make([]*models.Hotline, 0)
	query := `SELECT id, label, number, category FROM hotlines ORDER BY category, label, number;`
	if err := pgxscan.Select(ctx, postgres.QuerierFrom(ctx, r.db), &hotlines, query); err != nil {
		return nil, fmt.Errorf("failed to list hotlines: %w", err)
	}
	return hotlines, nil
}

// Create добавляет номер
func (r *HotlineRepository) Create(ctx context.Context, hotline *models.Hotline) error {
	query := `INSERT INTO hotlines (id, label, number, category) VALUES ($1, $2, $3, $4);`
	_, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, query,
		hotline.ID,
		hotline.Label,
		hotline.Number,
		hotline.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to create hotline: %w", err)
	}
	return nil
}

// Update полностью заменяет поля номера
func (r *HotlineRepository) Update(ctx context.Context, hotline *models.Hotline) error {
	query := `UPDATE hotlines SET label = $1, number = $2, category = $3 WHERE id = $4;`
	cmdTag, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, query,
		hotline.Label,
		hotline.Number,
		hotline.Category,
		hotline.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hotline: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.NotFound("Hotline not found")
	}
	return nil
}

// Delete удаляет номер
func (r *HotlineRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, `DELETE FROM hotlines WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hotline: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.NotFound("Hotline not found")
	}
	return nil
}

// seedTable в одной транзакции проверяет, что таблица пуста, и выполняет пакет вставок.
// Вставки должны использовать заранее назначенные id и ON CONFLICT (id) DO NOTHING,
// тогда параллельные вызовы сходятся к одному и тому же набору строк.
func seedTable(ctx context.Context, q postgres.Querier, table models.ReferenceTable, batch *pgx.Batch) (int, error) {
	tx, err := q.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction for %s: %w", table, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var count int64
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgx.Identifier{string(table)}.Sanitize()).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	if count > 0 {
		return 0, nil
	}

	results := tx.SendBatch(ctx, batch)
	inserted := 0
	for i := 0; i < batch.Len(); i++ {
		cmdTag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return 0, fmt.Errorf("failed to seed %s: %w", table, err)
		}
		inserted += int(cmdTag.RowsAffected())
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close seed batch for %s: %w", table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit seed of %s: %w", table, err)
	}
	return inserted, nil
}
