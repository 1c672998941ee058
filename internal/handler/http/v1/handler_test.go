package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	auth        *mocks.MockAuthService
	incidents   *mocks.MockIncidentService
	validations *mocks.MockValidationService
	reference   *mocks.MockReferenceService
	userData    *mocks.MockUserDataService
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		auth:        mocks.NewMockAuthService(ctrl),
		incidents:   mocks.NewMockIncidentService(ctrl),
		validations: mocks.NewMockValidationService(ctrl),
		reference:   mocks.NewMockReferenceService(ctrl),
		userData:    mocks.NewMockUserDataService(ctrl),
	}

	handler := NewHandler(m.auth, m.incidents, m.validations, m.reference, m.userData, newTestLogger(), &config.Config{})

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api, nil)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router http.Handler, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func jsonBody(t *testing.T, v any) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

var (
	citizen = &models.User{ID: "user-1", Email: "juan@example.com", FullName: "Juan"}
	admin   = &models.User{ID: "admin-1", Email: "admin@example.com", FullName: "Admin", IsAdmin: true}
)

// expectUser настраивает определение пользователя по токену
func (m *serviceMocks) expectUser(token string, user *models.User) {
	m.auth.EXPECT().RequireUser(gomock.Any(), token).Return(user, nil).AnyTimes()
}

func sampleIncident(id string) *models.Incident {
	return &models.Incident{
		ID:            id,
		IncidentType:  "flood",
		Date:          "2024-07-15",
		Time:          "08:30",
		Latitude:      13.05,
		Longitude:     123.52,
		Description:   "Knee-deep water",
		Images:        []models.IncidentImage{},
		InternalNotes: "dispatch notified",
		Status:        models.IncidentStatusNew,
		CreatedAt:     time.Date(2024, 7, 15, 8, 30, 0, 0, time.UTC),
	}
}

func TestRootAndHealth(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"MDRRMO Pio Duran Emergency App API"}`, w.Body.String())

	w = makeRequest(router, http.MethodGet, "/api/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSubmitIncident_Created(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub models.IncidentSubmission) (*models.Incident, bool, error) {
			require.NotNil(t, sub.IncidentTypeA)
			assert.Equal(t, "flood", *sub.IncidentTypeA)
			require.NotNil(t, sub.Location)
			assert.Equal(t, 13.05, *sub.Location.Latitude)
			assert.Equal(t, "0917", *sub.Phone)
			return sampleIncident("inc-1"), true, nil
		}).Times(1)

	body := `{"incidentType":"flood","location":{"latitude":13.05,"longitude":123.52},"description":"Knee-deep water","phone":"0917"}`
	w := makeRequest(router, http.MethodPost, "/api/incidents", strings.NewReader(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "inc-1", resp.ID)
	assert.Equal(t, "new", resp.Status)
	assert.NotContains(t, w.Body.String(), "internal_notes")
}

func TestSubmitIncident_ReplayReturnsOK(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(sampleIncident("offline-1"), false, nil)

	w := makeRequest(router, http.MethodPost, "/api/incidents", strings.NewReader(`{"id":"offline-1"}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitIncident_MissingFieldsIsUnprocessable(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Return(nil, false, models.Invalid("location (latitude/longitude) is required"))

	w := makeRequest(router, http.MethodPost, "/api/incidents", strings.NewReader(`{"incident_type":"flood"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"location (latitude/longitude) is required"}`, w.Body.String())
}

func TestSubmitIncident_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/incidents", strings.NewReader(`{"incident_type": "flood"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestListIncidents_HidesInternalNotes(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().ListPublic(gomock.Any()).Return([]*models.Incident{sampleIncident("inc-1")}, nil)

	w := makeRequest(router, http.MethodGet, "/api/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"incidents"`)
	assert.NotContains(t, w.Body.String(), "dispatch notified")
}

func TestListIncidents_InternalError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().ListPublic(gomock.Any()).Return(nil, errors.New("connection refused"))

	w := makeRequest(router, http.MethodGet, "/api/incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		session := &models.Session{AccessToken: "tok", TokenType: "bearer", User: citizen}

		m.auth.EXPECT().
			Register(gomock.Any(), models.Registration{Email: "juan@example.com", Password: "secret", FullName: "Juan"}).
			Return(session, nil)

		w := makeRequest(router, http.MethodPost, "/api/auth/register", jsonBody(t, RegisterRequest{
			Email: "juan@example.com", Password: "secret", FullName: "Juan",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "tok", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, "user-1", resp.User.ID)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("duplicate email is bad request", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, models.Conflict("Email already registered"))

		w := makeRequest(router, http.MethodPost, "/api/auth/register", jsonBody(t, RegisterRequest{
			Email: "juan@example.com", Password: "secret", FullName: "Juan",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Email already registered"}`, w.Body.String())
	})

	t.Run("invalid email", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, http.MethodPost, "/api/auth/register", jsonBody(t, RegisterRequest{
			Email: "not-an-email", Password: "secret", FullName: "Juan",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"email must be a valid email address"}`, w.Body.String())
	})
}

func TestBindJSON_ReadableValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		body    string
		token   bool
		message string
	}{
		{
			name:    "missing field uses json name",
			url:     "/api/auth/register",
			body:    `{"email":"juan@example.com","password":"secret"}`,
			message: "full_name is required",
		},
		{
			name:    "password over bcrypt limit",
			url:     "/api/auth/register",
			body:    `{"email":"juan@example.com","password":"` + strings.Repeat("p", 73) + `","full_name":"Juan"}`,
			message: "password must be at most 72 characters",
		},
		{
			name:    "latitude out of range",
			url:     "/api/admin/locations",
			body:    `{"type":"fire","name":"n","address":"a","lat":100,"lng":123}`,
			token:   true,
			message: "lat must be a valid latitude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			var headers []map[string]string
			if tt.token {
				m.expectUser("admin-token", admin)
				headers = append(headers, bearer("admin-token"))
			}

			w := makeRequest(router, http.MethodPost, tt.url, strings.NewReader(tt.body), headers...)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "Key:")
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.auth.EXPECT().Login(gomock.Any(), "juan@example.com", "wrong").
		Return(nil, models.Unauthorized("Invalid email or password"))

	w := makeRequest(router, http.MethodPost, "/api/auth/login", jsonBody(t, LoginRequest{Email: "juan@example.com", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
}

func TestMe(t *testing.T) {
	t.Run("without token", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.auth.EXPECT().RequireUser(gomock.Any(), "").Return(nil, models.Unauthorized("Not authenticated"))

		w := makeRequest(router, http.MethodGet, "/api/auth/me", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Not authenticated"}`, w.Body.String())
	})

	t.Run("with token", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("user-token", citizen)

		w := makeRequest(router, http.MethodGet, "/api/auth/me", nil, bearer("user-token"))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "juan@example.com", resp.Email)
		assert.False(t, resp.IsAdmin)
	})
}

func TestLogout_RevokesPresentedToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.expectUser("user-token", citizen)
	m.auth.EXPECT().Logout(gomock.Any(), "user-token").Return(nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/auth/logout", nil, bearer("user-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestBootstrap_ForbiddenForAnyPayloadOnceAdminExists(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "valid registration", body: `{"email":"admin@example.com","password":"secret","full_name":"Admin"}`},
		{name: "empty object", body: `{}`},
		{name: "missing full name", body: `{"email":"admin@example.com","password":"secret"}`},
		{name: "malformed json", body: `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.auth.EXPECT().BootstrapAllowed(gomock.Any()).Return(models.Forbidden("Admin already bootstrapped"))
			m.auth.EXPECT().Bootstrap(gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodPost, "/api/admin/bootstrap", strings.NewReader(tt.body))

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.JSONEq(t, `{"error":"Admin already bootstrapped"}`, w.Body.String())
		})
	}
}

func TestBootstrap_FirstAdmin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.auth.EXPECT().BootstrapAllowed(gomock.Any()).Return(nil)
		m.auth.EXPECT().Bootstrap(gomock.Any(), gomock.Any()).
			Return(&models.Session{AccessToken: "tok", TokenType: "bearer", User: admin}, nil)

		w := makeRequest(router, http.MethodPost, "/api/admin/bootstrap", jsonBody(t, RegisterRequest{
			Email: "admin@example.com", Password: "secret", FullName: "Admin",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.User.IsAdmin)
	})

	t.Run("invalid body while bootstrap is open", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.auth.EXPECT().BootstrapAllowed(gomock.Any()).Return(nil)
		m.auth.EXPECT().Bootstrap(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, http.MethodPost, "/api/admin/bootstrap", strings.NewReader(`{}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"email is required"}`, w.Body.String())
	})

	t.Run("lost race to a concurrent bootstrap", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.auth.EXPECT().BootstrapAllowed(gomock.Any()).Return(nil)
		m.auth.EXPECT().Bootstrap(gomock.Any(), gomock.Any()).Return(nil, models.Forbidden("Admin already bootstrapped"))

		w := makeRequest(router, http.MethodPost, "/api/admin/bootstrap", jsonBody(t, RegisterRequest{
			Email: "admin@example.com", Password: "secret", FullName: "Admin",
		}))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.expectUser("user-token", citizen)
	m.incidents.EXPECT().AdminList(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/admin/incidents", nil, bearer("user-token"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Admin access required"}`, w.Body.String())
}

func TestAdminListIncidents_PassesFilter(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.expectUser("admin-token", admin)

	resolved := models.IncidentStatusResolved
	m.incidents.EXPECT().
		AdminList(gomock.Any(), models.IncidentFilter{Status: &resolved, Query: "flood"}).
		Return([]*models.Incident{sampleIncident("inc-1")}, nil)

	w := makeRequest(router, http.MethodGet, "/api/admin/incidents?status=resolved&q=flood", nil, bearer("admin-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dispatch notified")
}

func TestAdminListIncidents_InvalidStatus(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.expectUser("admin-token", admin)
	m.incidents.EXPECT().AdminList(gomock.Any(), gomock.Any()).Return(nil, models.Invalid("Invalid status"))

	w := makeRequest(router, http.MethodGet, "/api/admin/incidents?status=closed", nil, bearer("admin-token"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminExportIncidents(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.expectUser("admin-token", admin)
	m.incidents.EXPECT().Export(gomock.Any(), models.IncidentFilter{}).Return([]byte("PK"), nil)

	w := makeRequest(router, http.MethodGet, "/api/admin/incidents/export", nil, bearer("admin-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "incidents.xlsx")
	assert.Equal(t, "PK", w.Body.String())
}

func TestAdminUpdateIncident(t *testing.T) {
	t.Run("status change", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("admin-token", admin)

		inProgress := models.IncidentStatusInProgress
		updated := sampleIncident("inc-1")
		updated.Status = inProgress
		m.incidents.EXPECT().
			Update(gomock.Any(), "inc-1", models.IncidentPatch{Status: &inProgress}).
			Return(updated, nil)

		w := makeRequest(router, http.MethodPatch, "/api/admin/incidents/inc-1",
			strings.NewReader(`{"status":"in-progress"}`), bearer("admin-token"))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]AdminIncidentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "in-progress", resp["incident"].Status)
	})

	t.Run("not found", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("admin-token", admin)
		m.incidents.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(nil, models.NotFound("Incident not found"))

		w := makeRequest(router, http.MethodPatch, "/api/admin/incidents/missing",
			strings.NewReader(`{"internal_notes":"x"}`), bearer("admin-token"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Incident not found"}`, w.Body.String())
	})
}

func TestAdminDeleteIncident(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.expectUser("admin-token", admin)
	m.incidents.EXPECT().Delete(gomock.Any(), "inc-1").Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/admin/incidents/inc-1", nil, bearer("admin-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestValidateIncident(t *testing.T) {
	t.Run("empty body defaults in service", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("user-token", citizen)
		m.validations.EXPECT().
			Validate(gomock.Any(), "inc-1", "user-1", models.ValidationType("")).
			Return(models.ValidationCreated, nil)

		w := makeRequest(router, http.MethodPost, "/api/incidents/inc-1/validate", nil, bearer("user-token"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Incident validated successfully","outcome":"created"}`, w.Body.String())
	})

	t.Run("repeat vote updates", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("user-token", citizen)
		m.validations.EXPECT().
			Validate(gomock.Any(), "inc-1", "user-1", models.ValidationFalseReport).
			Return(models.ValidationUpdated, nil)

		w := makeRequest(router, http.MethodPost, "/api/incidents/inc-1/validate",
			strings.NewReader(`{"validation_type":"false_report"}`), bearer("user-token"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Validation updated successfully","outcome":"updated"}`, w.Body.String())
	})

	t.Run("invalid type", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("user-token", citizen)
		m.validations.EXPECT().Validate(gomock.Any(), "inc-1", "user-1", models.ValidationType("maybe")).
			Return(models.ValidationOutcome(""), models.Invalid("Invalid validation type"))

		w := makeRequest(router, http.MethodPost, "/api/incidents/inc-1/validate",
			strings.NewReader(`{"validation_type":"maybe"}`), bearer("user-token"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.auth.EXPECT().RequireUser(gomock.Any(), "").Return(nil, models.Unauthorized("Not authenticated"))
		m.validations.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, http.MethodPost, "/api/incidents/inc-1/validate", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestIncidentValidations_IncludesCallerVote(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.auth.EXPECT().OptionalUser(gomock.Any(), "user-token").Return(citizen)

	confirm := models.ValidationConfirm
	m.validations.EXPECT().
		Stats(gomock.Any(), "inc-1", gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, _ string, callerID *string) (*models.ValidationStats, error) {
			assert.Equal(t, "user-1", *callerID)
			return &models.ValidationStats{
				IncidentID:           "inc-1",
				TotalValidations:     3,
				CountsByType:         map[models.ValidationType]int{models.ValidationConfirm: 2, models.ValidationResolved: 1},
				CallerHasValidated:   true,
				CallerValidationType: &confirm,
			}, nil
		})

	w := makeRequest(router, http.MethodGet, "/api/incidents/inc-1/validations", nil, bearer("user-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"incident_id": "inc-1",
		"total_validations": 3,
		"confirmations": 2,
		"validation_breakdown": {"confirm": 2, "resolved": 1},
		"user_validated": true,
		"user_validation_type": "confirm"
	}`, w.Body.String())
}

func TestIncidentValidations_Anonymous(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.auth.EXPECT().OptionalUser(gomock.Any(), "").Return(nil)
	m.validations.EXPECT().Stats(gomock.Any(), "inc-1", gomock.Nil()).
		Return(&models.ValidationStats{IncidentID: "inc-1", CountsByType: map[models.ValidationType]int{}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/incidents/inc-1/validations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_validation_type":null`)
}

func TestRemoveValidation_SecondCallNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.expectUser("user-token", citizen)
	gomock.InOrder(
		m.validations.EXPECT().Remove(gomock.Any(), "inc-1", "user-1").Return(nil),
		m.validations.EXPECT().Remove(gomock.Any(), "inc-1", "user-1").Return(models.NotFound("Validation not found")),
	)

	first := makeRequest(router, http.MethodDelete, "/api/incidents/inc-1/validate", nil, bearer("user-token"))
	second := makeRequest(router, http.MethodDelete, "/api/incidents/inc-1/validate", nil, bearer("user-token"))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"message":"Validation removed successfully"}`, first.Body.String())
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestReferenceLists(t *testing.T) {
	_, m, router := newTestHandler(t)
	hospital := models.LocationHospital

	m.reference.EXPECT().ListHotlines(gomock.Any()).
		Return([]*models.Hotline{{ID: "h1", Label: "MDRRMO", Number: "0917", Category: "emergency"}}, nil)
	m.reference.EXPECT().ListLocations(gomock.Any(), &hospital).
		Return([]*models.MapLocation{{ID: 5, Type: hospital, Name: "Medicare Hospital"}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/hotlines", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hotlines":[{"id":"h1","label":"MDRRMO","number":"0917","category":"emergency"}]}`, w.Body.String())

	w = makeRequest(router, http.MethodGet, "/api/map/locations?location_type=hospital", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Medicare Hospital")
}

func TestAdminLocations(t *testing.T) {
	t.Run("create with invalid type", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("admin-token", admin)
		m.reference.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).
			Return(models.Invalid("Invalid location type. Must be one of: evacuation, hospital, police, fire, government"))

		w := makeRequest(router, http.MethodPost, "/api/admin/locations",
			strings.NewReader(`{"type":"school","name":"n","address":"a","lat":13,"lng":123}`), bearer("admin-token"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Must be one of")
	})

	t.Run("create assigns id", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("admin-token", admin)
		m.reference.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *models.MapLocation) error {
				l.ID = 13
				return nil
			})

		w := makeRequest(router, http.MethodPost, "/api/admin/locations",
			strings.NewReader(`{"type":"fire","name":"Sub-station","address":"Rawis","lat":13.04,"lng":123.51}`), bearer("admin-token"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":13`)
	})

	t.Run("non numeric id", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("admin-token", admin)

		w := makeRequest(router, http.MethodDelete, "/api/admin/locations/abc", nil, bearer("admin-token"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("partial update", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("admin-token", admin)
		name := "Renamed"
		m.reference.EXPECT().UpdateLocation(gomock.Any(), 3, models.MapLocationPatch{Name: &name}).
			Return(&models.MapLocation{ID: 3, Name: name, Type: models.LocationEvacuation}, nil)

		w := makeRequest(router, http.MethodPut, "/api/admin/locations/3",
			strings.NewReader(`{"name":"Renamed"}`), bearer("admin-token"))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAdminHotlines_UpdateNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.expectUser("admin-token", admin)
	m.reference.EXPECT().UpdateHotline(gomock.Any(), &models.Hotline{ID: "h9", Label: "x", Number: "1", Category: "c"}).
		Return(models.NotFound("Hotline not found"))

	w := makeRequest(router, http.MethodPut, "/api/admin/hotlines/h9",
		jsonBody(t, HotlineRequest{Label: "x", Number: "1", Category: "c"}), bearer("admin-token"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserData(t *testing.T) {
	t.Run("plan absent is null", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("user-token", citizen)
		m.userData.EXPECT().GetPlan(gomock.Any(), "user-1").Return(nil, nil)

		w := makeRequest(router, http.MethodGet, "/api/user/emergency-plan", nil, bearer("user-token"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"plan":null}`, w.Body.String())
	})

	t.Run("save checklist", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.expectUser("user-token", citizen)
		data := `[{"id":1,"checked":true}]`
		m.userData.EXPECT().
			SaveChecklist(gomock.Any(), "user-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, userID string, raw json.RawMessage) (*models.ChecklistProgress, error) {
				assert.JSONEq(t, data, string(raw))
				return &models.ChecklistProgress{ID: "c1", UserID: userID, ChecklistData: raw}, nil
			})

		w := makeRequest(router, http.MethodPost, "/api/user/checklist",
			strings.NewReader(`{"checklist_data":`+data+`}`), bearer("user-token"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Checklist saved successfully")
	})
}

func TestStaticContent(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/checklist", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Valid IDs (Photocopy)")

	w = makeRequest(router, http.MethodGet, "/api/resources", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "government_agencies")
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(BodyLimit(16))
	router.POST("/echo", func(c *gin.Context) {
		var v map[string]any
		if err := c.ShouldBindJSON(&v); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, http.MethodPost, "/echo", strings.NewReader(`{"description":"far too long for the limit"}`))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = makeRequest(router, http.MethodPost, "/echo", strings.NewReader(`{"a":1}`))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"https://app.example.com"}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := makeRequest(router, http.MethodOptions, "/ping", nil, map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type failingAcquirer struct{}

func (failingAcquirer) Acquire(context.Context) (*pgxpool.Conn, error) {
	return nil, errors.New("pool closed")
}

func TestConnScope_AcquireFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ConnScope(failingAcquirer{}, newTestLogger()))
	called := false
	router.GET("/ping", func(c *gin.Context) { called = true })

	w := makeRequest(router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, called)
}

func TestAuthRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter, err := NewAuthRateLimiter(client, "2-M", newTestLogger())
	require.NoError(t, err)

	_, m, _ := newTestHandler(t)
	handler := NewHandler(m.auth, m.incidents, m.validations, m.reference, m.userData, newTestLogger(), &config.Config{})
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"), limiter)

	m.auth.EXPECT().Login(gomock.Any(), "juan@example.com", "wrong").
		Return(nil, models.Unauthorized("Invalid email or password")).Times(2)

	var codes []int
	for range 3 {
		w := makeRequest(router, http.MethodPost, "/api/auth/login",
			jsonBody(t, LoginRequest{Email: "juan@example.com", Password: "wrong"}))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestAuthRateLimiter_InvalidRate(t *testing.T) {
	_, err := NewAuthRateLimiter(redis.NewClient(&redis.Options{}), "twenty", newTestLogger())
	assert.Error(t, err)
}
