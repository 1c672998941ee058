package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/incident_reporting_system/internal/metrics"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/incident_reporting_system/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	service := NewIncidentService(repoMock, publisherMock, metrics.NewNop(), newTestLogger())
	s := service.(*incidentService)
	s.now = func() time.Time { return fixedNow }
	return s, repoMock, publisherMock
}

func floodSubmission() models.IncidentSubmission {
	return models.IncidentSubmission{
		IncidentType: ptr("flood"),
		Latitude:     ptr(13.05),
		Longitude:    ptr(123.52),
		Description:  ptr("Knee-deep water"),
	}
}

func TestSubmit_NewIncidentPublishesEvent(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) (*models.Incident, bool, error) {
			return inc, true, nil
		}).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.IncidentEvent) error {
			assert.Equal(t, models.EventIncidentCreated, ev.Type)
			assert.Equal(t, "flood", ev.IncidentType)
			return nil
		}).
		Times(1)

	// Действие
	incident, created, err := service.Submit(ctx, floodSubmission())

	// Проверки
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.IncidentStatusNew, incident.Status)
	assert.Equal(t, "2024-07-15", incident.Date)
	assert.Equal(t, 1.0, testutil.ToFloat64(service.metrics.IncidentsSubmitted.WithLabelValues("created")))
}

func TestSubmit_ReplayReturnsStoredRecord(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	sub := floodSubmission()
	sub.ID = ptr("offline-1")
	stored := &models.Incident{ID: "offline-1", IncidentType: "flood", Status: models.IncidentStatusInProgress}

	// Ожидания: событие не публикуется
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(stored, false, nil).
		Times(1)

	// Действие
	incident, created, err := service.Submit(ctx, sub)

	// Проверки
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, stored, incident)
}

func TestSubmit_InvalidPayloadNeverReachesRepository(t *testing.T) {
	service, _, _ := newTestIncidentService(t)
	sub := floodSubmission()
	sub.Latitude = nil

	_, _, err := service.Submit(context.Background(), sub)

	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestSubmit_PublishFailureDoesNotFailRequest(t *testing.T) {
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) (*models.Incident, bool, error) {
			return inc, true, nil
		})
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

	_, created, err := service.Submit(ctx, floodSubmission())

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1.0, testutil.ToFloat64(service.metrics.EventsPublished.WithLabelValues("failed")))
}

func TestListPublic_UsesPublicLimit(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		List(ctx, models.IncidentFilter{Limit: publicIncidentLimit}).
		Return([]*models.Incident{}, nil)

	incidents, err := service.ListPublic(ctx)

	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestAdminList(t *testing.T) {
	t.Run("caps limit and passes filter", func(t *testing.T) {
		service, repoMock, _ := newTestIncidentService(t)
		status := models.IncidentStatusResolved

		repoMock.EXPECT().
			List(gomock.Any(), models.IncidentFilter{Status: &status, Query: "flood", Limit: adminIncidentLimit}).
			Return([]*models.Incident{{ID: "1"}}, nil)

		incidents, err := service.AdminList(context.Background(), models.IncidentFilter{Status: &status, Query: "flood", Limit: 10000})

		require.NoError(t, err)
		assert.Len(t, incidents, 1)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		service, _, _ := newTestIncidentService(t)
		status := models.IncidentStatus("closed")

		_, err := service.AdminList(context.Background(), models.IncidentFilter{Status: &status})

		assert.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestUpdate_StatusChangePublishesEvent(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	status := models.IncidentStatusInProgress
	patch := models.IncidentPatch{Status: &status}
	updated := &models.Incident{ID: "inc-1", Status: status}

	// Ожидания
	repoMock.EXPECT().Update(ctx, "inc-1", patch).Return(updated, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.IncidentEvent) error {
			assert.Equal(t, models.EventIncidentStatusChanged, ev.Type)
			assert.Equal(t, status, ev.Status)
			return nil
		}).
		Times(1)

	// Действие
	incident, err := service.Update(ctx, "inc-1", patch)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, updated, incident)
}

func TestUpdate_NotesOnlyDoesNotPublish(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	patch := models.IncidentPatch{InternalNotes: ptr("called reporter")}

	repoMock.EXPECT().Update(ctx, "inc-1", patch).Return(&models.Incident{ID: "inc-1"}, nil)

	_, err := service.Update(ctx, "inc-1", patch)

	assert.NoError(t, err)
}

func TestUpdate_RejectedPatches(t *testing.T) {
	bogus := models.IncidentStatus("archived")
	tests := []struct {
		name    string
		patch   models.IncidentPatch
		message string
	}{
		{name: "empty", patch: models.IncidentPatch{}, message: "No fields to update"},
		{name: "invalid status", patch: models.IncidentPatch{Status: &bogus}, message: "Invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestIncidentService(t)

			_, err := service.Update(context.Background(), "inc-1", tt.patch)

			assert.True(t, errors.Is(err, models.ErrValidation))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	notes := "x"

	repoMock.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(nil, models.NotFound("Incident not found"))

	_, err := service.Update(context.Background(), "missing", models.IncidentPatch{InternalNotes: &notes})

	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.Equal(t, "Incident not found", err.Error())
}

func TestDelete(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)

	repoMock.EXPECT().Delete(gomock.Any(), "inc-1").Return(nil)
	repoMock.EXPECT().Delete(gomock.Any(), "inc-1").Return(models.NotFound("Incident not found"))

	assert.NoError(t, service.Delete(context.Background(), "inc-1"))
	assert.True(t, errors.Is(service.Delete(context.Background(), "inc-1"), models.ErrNotFound))
}

func TestExport_WritesWorkbook(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	phone := "0917-000-0000"
	incidents := []*models.Incident{
		{
			ID: "inc-1", IncidentType: "flood", Date: "2024-07-15", Time: "08:30",
			Latitude: 13.05, Longitude: 123.52, Description: "Knee-deep water",
			ReporterPhone: &phone, Images: []models.IncidentImage{{Data: "a"}},
			Status: models.IncidentStatusNew, CreatedAt: fixedNow,
		},
	}

	// Ожидания
	repoMock.EXPECT().List(gomock.Any(), gomock.Any()).Return(incidents, nil)

	// Действие
	data, err := service.Export(context.Background(), models.IncidentFilter{})

	// Проверки
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(incidentSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, incidentExportHeader, rows[0])
	assert.Equal(t, "inc-1", rows[1][0])
	assert.Equal(t, "flood", rows[1][1])
	assert.Equal(t, "0917-000-0000", rows[1][7])
	assert.Equal(t, "1", rows[1][9])
	assert.Equal(t, "new", rows[1][10])
}
