package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/shenikar/incident_reporting_system/pkg/postgres"
)

const singleAdminConstraint = "users_single_admin_idx"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет пользователя. Email приводится к нижнему регистру.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	query := `
		INSERT INTO users (id, email, password, full_name, phone, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := postgres.QuerierFrom(ctx, r.db).Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Phone,
		user.IsAdmin,
		user.CreatedAt,
	)
	if err != nil {
		if pgErr, ok := isUniqueViolation(err); ok {
			if pgErr.ConstraintName == singleAdminConstraint {
				return models.Forbidden("Admin already bootstrapped")
			}
			return models.Conflict("Email already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID возвращает пользователя по идентификатору
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE id = $1;`, id)
}

// GetByEmail ищет пользователя по email без учета регистра
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE lower(email) = lower($1);`, strings.TrimSpace(email))
}

// AdminExists сообщает, создан ли уже администратор
func (r *UserRepository) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := postgres.QuerierFrom(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE is_admin);`).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	if err := pgxscan.Get(ctx, postgres.QuerierFrom(ctx, r.db), user, query, arg); err != nil {
		if pgxscan.NotFound(err) {
			return nil, models.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
