//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/incident_reporting_system/internal/metrics"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/repository"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/shenikar/incident_reporting_system/pkg/postgres"
)

type PostgresRepositorySuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool

	users       service.UserRepository
	incidents   service.IncidentRepository
	validations service.ValidationRepository
	hotlines    service.HotlineRepository
	locations   service.MapLocationRepository
	userData    service.UserDataRepository
}

func TestPostgresRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresRepositorySuite))
}

func (s *PostgresRepositorySuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("incidents"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.Require().NoError(postgres.RunMigrations(dsn, "../../migrations"))

	s.pool, err = postgres.NewPostgresDB(ctx, dsn)
	s.Require().NoError(err)

	s.users = repository.NewUserRepository(s.pool)
	s.incidents = repository.NewIncidentRepository(s.pool)
	s.validations = repository.NewValidationRepository(s.pool)
	s.hotlines = repository.NewHotlineRepository(s.pool)
	s.locations = repository.NewMapLocationRepository(s.pool)
	s.userData = repository.NewUserDataRepository(s.pool)
}

func (s *PostgresRepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

func (s *PostgresRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `
		TRUNCATE incident_validations, emergency_plans, checklists, incidents, users, hotlines, map_locations;
	`)
	s.Require().NoError(err)
}

func (s *PostgresRepositorySuite) createUser(email string, isAdmin bool) *models.User {
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "hash",
		FullName:     "Test User",
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	s.Require().NoError(s.users.Create(context.Background(), user))
	return user
}

func (s *PostgresRepositorySuite) createIncident(id string) *models.Incident {
	incident := &models.Incident{
		ID:           id,
		IncidentType: "flood",
		Date:         "2024-07-15",
		Time:         "08:30",
		Latitude:     13.05,
		Longitude:    123.52,
		Description:  "Knee-deep water",
		Images:       []models.IncidentImage{},
		Status:       models.IncidentStatusNew,
		CreatedAt:    time.Now().UTC(),
	}
	_, created, err := s.incidents.Create(context.Background(), incident)
	s.Require().NoError(err)
	s.Require().True(created)
	return incident
}

func (s *PostgresRepositorySuite) TestUsers_EmailIsCaseInsensitive() {
	ctx := context.Background()
	s.createUser("Juan@Example.com", false)

	found, err := s.users.GetByEmail(ctx, "JUAN@example.COM")
	s.Require().NoError(err)
	s.Equal("juan@example.com", found.Email)

	err = s.users.Create(ctx, &models.User{
		ID: uuid.NewString(), Email: "juan@EXAMPLE.com", PasswordHash: "x", FullName: "Dup", CreatedAt: time.Now(),
	})
	s.True(errors.Is(err, models.ErrConflict))
}

func (s *PostgresRepositorySuite) TestUsers_SingleAdmin() {
	ctx := context.Background()

	exists, err := s.users.AdminExists(ctx)
	s.Require().NoError(err)
	s.False(exists)

	s.createUser("admin@example.com", true)

	err = s.users.Create(ctx, &models.User{
		ID: uuid.NewString(), Email: "second@example.com", PasswordHash: "x", FullName: "Second",
		IsAdmin: true, CreatedAt: time.Now(),
	})
	s.True(errors.Is(err, models.ErrForbidden))

	exists, err = s.users.AdminExists(ctx)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *PostgresRepositorySuite) TestIncidents_ResubmitIsIdempotent() {
	ctx := context.Background()
	original := s.createIncident("offline-42")

	replay := *original
	replay.Description = "Changed on the device"
	stored, created, err := s.incidents.Create(ctx, &replay)

	s.Require().NoError(err)
	s.False(created)
	s.Equal("Knee-deep water", stored.Description)

	all, err := s.incidents.List(ctx, models.IncidentFilter{Limit: 10})
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *PostgresRepositorySuite) TestIncidents_FilterAndUpdate() {
	ctx := context.Background()
	s.createIncident("a")
	s.createIncident("b")

	resolved := models.IncidentStatusResolved
	notes := "Cleared by barangay"
	updated, err := s.incidents.Update(ctx, "b", models.IncidentPatch{Status: &resolved, InternalNotes: &notes})
	s.Require().NoError(err)
	s.Equal(resolved, updated.Status)
	s.Equal(notes, updated.InternalNotes)

	filtered, err := s.incidents.List(ctx, models.IncidentFilter{Status: &resolved, Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal("b", filtered[0].ID)

	searched, err := s.incidents.List(ctx, models.IncidentFilter{Query: "KNEE", Limit: 10})
	s.Require().NoError(err)
	s.Len(searched, 2)

	_, err = s.incidents.Update(ctx, "missing", models.IncidentPatch{Status: &resolved})
	s.True(errors.Is(err, models.ErrNotFound))
}

func (s *PostgresRepositorySuite) TestIncidents_DeleteCascadesValidations() {
	ctx := context.Background()
	user := s.createUser("voter@example.com", false)
	s.createIncident("inc-1")
	s.Require().NoError(s.validations.Insert(ctx, &models.Validation{
		ID: uuid.NewString(), IncidentID: "inc-1", UserID: user.ID,
		ValidationType: models.ValidationConfirm, CreatedAt: time.Now(),
	}))

	s.Require().NoError(s.incidents.Delete(ctx, "inc-1"))

	counts, err := s.validations.CountByType(ctx, "inc-1")
	s.Require().NoError(err)
	s.Empty(counts)
	s.True(errors.Is(s.incidents.Delete(ctx, "inc-1"), models.ErrNotFound))
}

func (s *PostgresRepositorySuite) TestValidations_ConcurrentVotesConverge() {
	ctx := context.Background()
	user := s.createUser("voter@example.com", false)
	s.createIncident("inc-1")

	const goroutines = 20
	var inserted, conflicts atomic.Int32
	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			err := s.validations.Insert(ctx, &models.Validation{
				ID: uuid.NewString(), IncidentID: "inc-1", UserID: user.ID,
				ValidationType: models.ValidationConfirm, CreatedAt: time.Now(),
			})
			switch {
			case err == nil:
				inserted.Add(1)
			case errors.Is(err, models.ErrConflict):
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal(int32(1), inserted.Load())
	s.Equal(int32(goroutines-1), conflicts.Load())

	counts, err := s.validations.CountByType(ctx, "inc-1")
	s.Require().NoError(err)
	s.Require().Len(counts, 1)
	s.Equal(1, counts[0].Count)
}

func (s *PostgresRepositorySuite) TestValidationService_ConcurrentMixedVotesKeepLastWrite() {
	ctx := context.Background()
	user := s.createUser("voter@example.com", false)
	s.createIncident("inc-1")

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	validations := service.NewValidationService(s.validations, metrics.NewNop(), logger)

	types := []models.ValidationType{models.ValidationConfirm, models.ValidationResolved, models.ValidationFalseReport}
	const goroutines = 24
	var created, updated atomic.Int32
	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		voteType := types[i%len(types)]
		g.Go(func() error {
			outcome, err := validations.Validate(ctx, "inc-1", user.ID, voteType)
			if err != nil {
				return err
			}
			if outcome == models.ValidationCreated {
				created.Add(1)
			} else {
				updated.Add(1)
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal(int32(1), created.Load())
	s.Equal(int32(goroutines-1), updated.Load())

	// Последняя запись после конкурентных голосов определяет итоговый тип
	outcome, err := validations.Validate(ctx, "inc-1", user.ID, models.ValidationResolved)
	s.Require().NoError(err)
	s.Equal(models.ValidationUpdated, outcome)

	var rows int
	s.Require().NoError(s.pool.QueryRow(ctx,
		`SELECT count(*) FROM incident_validations WHERE incident_id = $1 AND user_id = $2`, "inc-1", user.ID,
	).Scan(&rows))
	s.Equal(1, rows)

	own, err := s.validations.FindForUser(ctx, "inc-1", user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(own)
	s.Equal(models.ValidationResolved, own.ValidationType)

	stats, err := validations.Stats(ctx, "inc-1", &user.ID)
	s.Require().NoError(err)
	s.Equal(1, stats.TotalValidations)
	s.Equal(1, stats.CountsByType[models.ValidationResolved])
	s.True(stats.CallerHasValidated)
}

func (s *PostgresRepositorySuite) TestValidations_UpdateFindDelete() {
	ctx := context.Background()
	user := s.createUser("voter@example.com", false)
	s.createIncident("inc-1")

	err := s.validations.Insert(ctx, &models.Validation{
		ID: uuid.NewString(), IncidentID: "missing", UserID: user.ID,
		ValidationType: models.ValidationConfirm, CreatedAt: time.Now(),
	})
	s.True(errors.Is(err, models.ErrNotFound))

	s.Require().NoError(s.validations.Insert(ctx, &models.Validation{
		ID: uuid.NewString(), IncidentID: "inc-1", UserID: user.ID,
		ValidationType: models.ValidationConfirm, CreatedAt: time.Now(),
	}))
	s.Require().NoError(s.validations.UpdateType(ctx, "inc-1", user.ID, models.ValidationFalseReport))

	own, err := s.validations.FindForUser(ctx, "inc-1", user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(own)
	s.Equal(models.ValidationFalseReport, own.ValidationType)

	s.Require().NoError(s.validations.Delete(ctx, "inc-1", user.ID))
	s.True(errors.Is(s.validations.Delete(ctx, "inc-1", user.ID), models.ErrNotFound))

	own, err = s.validations.FindForUser(ctx, "inc-1", user.ID)
	s.Require().NoError(err)
	s.Nil(own)
}

func (s *PostgresRepositorySuite) TestSeed_ConcurrentCallsInsertDefaultsOnce() {
	ctx := context.Background()
	defaults := service.DefaultHotlines()

	const goroutines = 8
	var total atomic.Int64
	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			n, err := s.hotlines.Seed(ctx, defaults)
			total.Add(int64(n))
			return err
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal(int64(len(defaults)), total.Load())
	hotlines, err := s.hotlines.List(ctx)
	s.Require().NoError(err)
	s.Len(hotlines, len(defaults))
}

func (s *PostgresRepositorySuite) TestSeed_NonEmptyTableIsLeftAlone() {
	ctx := context.Background()
	s.Require().NoError(s.hotlines.Create(ctx, &models.Hotline{
		ID: uuid.NewString(), Label: "Custom", Number: "911", Category: "emergency",
	}))

	n, err := s.hotlines.Seed(ctx, service.DefaultHotlines())
	s.Require().NoError(err)
	s.Zero(n)

	hotlines, err := s.hotlines.List(ctx)
	s.Require().NoError(err)
	s.Len(hotlines, 1)
}

func (s *PostgresRepositorySuite) TestLocations_CreateAssignsNextID() {
	ctx := context.Background()
	n, err := s.locations.Seed(ctx, service.DefaultMapLocations())
	s.Require().NoError(err)
	s.Equal(12, n)

	location := &models.MapLocation{Type: models.LocationFire, Name: "Fire Sub-station", Address: "Rawis", Lat: 13.04, Lng: 123.51}
	s.Require().NoError(s.locations.Create(ctx, location))
	s.Equal(13, location.ID)

	fire := models.LocationFire
	fires, err := s.locations.List(ctx, &fire)
	s.Require().NoError(err)
	s.Require().Len(fires, 1)
	s.Equal("Fire Sub-station", fires[0].Name)

	name := "Renamed"
	updated, err := s.locations.Update(ctx, 13, models.MapLocationPatch{Name: &name})
	s.Require().NoError(err)
	s.Equal("Renamed", updated.Name)

	s.Require().NoError(s.locations.Delete(ctx, 13))
	s.True(errors.Is(s.locations.Delete(ctx, 13), models.ErrNotFound))
}

func (s *PostgresRepositorySuite) TestUserData_UpsertKeepsSingleRow() {
	ctx := context.Background()
	user := s.createUser("planner@example.com", false)

	for i := 0; i < 3; i++ {
		_, err := s.userData.SavePlan(ctx, &models.EmergencyPlan{
			ID: uuid.NewString(), UserID: user.ID,
			PlanData:  []byte(fmt.Sprintf(`{"version":%d}`, i)),
			UpdatedAt: time.Now(),
		})
		s.Require().NoError(err)
	}

	plan, err := s.userData.GetPlan(ctx, user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(plan)
	s.JSONEq(`{"version":2}`, string(plan.PlanData))

	checklist, err := s.userData.GetChecklist(ctx, user.ID)
	s.Require().NoError(err)
	s.Nil(checklist)
}
