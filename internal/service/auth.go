package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting_system/internal/auth"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const tokenTypeBearer = "bearer"

// UserRepository определяет контракт хранилища учетных записей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	AdminExists(ctx context.Context) (bool, error)
}

// TokenRevocationStore хранит отозванные токены до истечения их срока
type TokenRevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TokenManager выпускает и проверяет access-токены
type TokenManager interface {
	Issue(subjectID string) (string, *auth.Claims, error)
	Verify(token string) (*auth.Claims, error)
}

// AuthService определяет контракт регистрации, входа и определения личности по токену
type AuthService interface {
	Register(ctx context.Context, reg models.Registration) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Bootstrap(ctx context.Context, reg models.Registration) (*models.Session, error)
	BootstrapAllowed(ctx context.Context) error
	Logout(ctx context.Context, token string) error
	RequireUser(ctx context.Context, token string) (*models.User, error)
	OptionalUser(ctx context.Context, token string) *models.User
}

type authService struct {
	users   UserRepository
	revoked TokenRevocationStore
	tokens  TokenManager
	logger  *logrus.Logger
	now     func() time.Time
}

func NewAuthService(users UserRepository, revoked TokenRevocationStore, tokens TokenManager, logger *logrus.Logger) AuthService {
	return &authService{
		users:   users,
		revoked: revoked,
		tokens:  tokens,
		logger:  logger,
		now:     time.Now,
	}
}

// RequireAdmin пропускает только администратора. Вызывается после определения пользователя.
func RequireAdmin(user *models.User) error {
	if user == nil || !user.IsAdmin {
		return models.Forbidden("Admin access required")
	}
	return nil
}

// Register создает учетную запись гражданина и сразу выдает токен
func (s *authService) Register(ctx context.Context, reg models.Registration) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
	})
	log.Info("Registering a new user")

	session, err := s.createAccount(ctx, reg, false)
	if err != nil {
		log.WithError(err).Warn("Failed to register user")
		return nil, err
	}

	log.WithField("user_id", session.User.ID).Info("User registered successfully")
	return session, nil
}

// Bootstrap создает первого администратора. Пока администратор существует, повторный вызов запрещен.
func (s *authService) Bootstrap(ctx context.Context, reg models.Registration) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Bootstrap",
	})
	log.Info("Attempting to bootstrap admin")

	if err := s.BootstrapAllowed(ctx); err != nil {
		log.WithError(err).Warn("Admin bootstrap rejected")
		return nil, err
	}

	// Гонку двух одновременных вызовов разрешает уникальный индекс в базе
	session, err := s.createAccount(ctx, reg, true)
	if err != nil {
		log.WithError(err).Warn("Failed to bootstrap admin")
		return nil, err
	}

	log.WithField("user_id", session.User.ID).Info("Admin bootstrapped successfully")
	return session, nil
}

// BootstrapAllowed возвращает Forbidden, если администратор уже существует
func (s *authService) BootstrapAllowed(ctx context.Context) error {
	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check admin existence")
		return fmt.Errorf("service: could not check admin existence: %w", err)
	}
	if exists {
		return models.Forbidden("Admin already bootstrapped")
	}
	return nil
}

// Login проверяет пароль и выдает токен
func (s *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
	})

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login attempt for unknown email")
			auth.VerifyPassword(password, "")
			return nil, models.Unauthorized("Invalid email or password")
		}
		log.WithError(err).Error("Failed to load user")
		return nil, fmt.Errorf("service: could not login: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		log.WithField("user_id", user.ID).Warn("Invalid password")
		return nil, models.Unauthorized("Invalid email or password")
	}

	session, err := s.issueSession(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return session, nil
}

// Logout отзывает токен до конца срока его действия
func (s *authService) Logout(ctx context.Context, token string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Logout",
	})

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return models.Unauthorized("Could not validate credentials")
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		log.WithError(err).Error("Failed to revoke token")
		return fmt.Errorf("service: could not logout: %w", err)
	}

	log.WithField("user_id", claims.Subject).Info("Token revoked")
	return nil
}

// RequireUser возвращает пользователя по токену или ошибку Unauthorized
func (s *authService) RequireUser(ctx context.Context, token string) (*models.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, models.Unauthorized("Not authenticated")
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, models.Unauthorized("Could not validate credentials")
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not check token revocation: %w", err)
	}
	if revoked {
		return nil, models.Unauthorized("Token has been revoked")
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.Unauthorized("Could not validate credentials")
		}
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}
	return user, nil
}

// OptionalUser работает как RequireUser, но вместо ошибки возвращает nil
func (s *authService) OptionalUser(ctx context.Context, token string) *models.User {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	user, err := s.RequireUser(ctx, token)
	if err != nil {
		if !errors.Is(err, models.ErrUnauthorized) {
			s.logger.WithFields(logrus.Fields{
				"service": "auth",
				"method":  "OptionalUser",
			}).WithError(err).Warn("Treating request as anonymous")
		}
		return nil
	}
	return user
}

func (s *authService) createAccount(ctx context.Context, reg models.Registration, isAdmin bool) (*models.Session, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if email == "" {
		return nil, models.Invalid("email is required")
	}
	if strings.TrimSpace(reg.FullName) == "" {
		return nil, models.Invalid("full_name is required")
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     reg.FullName,
		Phone:        reg.Phone,
		IsAdmin:      isAdmin,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) || errors.Is(err, models.ErrForbidden) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	return s.issueSession(user)
}

func (s *authService) issueSession(user *models.User) (*models.Session, error) {
	token, claims, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}
	return &models.Session{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        user,
	}, nil
}
