package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func statusPtr(s IncidentStatus) *IncidentStatus { return &s }

func TestIncidentStatus_IsValid(t *testing.T) {
	for _, s := range []IncidentStatus{IncidentStatusNew, IncidentStatusInProgress, IncidentStatusResolved} {
		assert.True(t, s.IsValid(), s)
	}
	for _, s := range []IncidentStatus{"", "closed", "NEW", "in_progress"} {
		assert.False(t, s.IsValid(), s)
	}
}

func TestIncidentPatch_Validate(t *testing.T) {
	notes := "dispatched team"

	tests := []struct {
		name    string
		patch   IncidentPatch
		wantErr string
	}{
		{name: "empty", patch: IncidentPatch{}, wantErr: "No fields to update"},
		{name: "invalid status", patch: IncidentPatch{Status: statusPtr("archived")}, wantErr: "Invalid status"},
		{name: "status only", patch: IncidentPatch{Status: statusPtr(IncidentStatusResolved)}},
		{name: "notes only", patch: IncidentPatch{InternalNotes: &notes}},
		{name: "back to new", patch: IncidentPatch{Status: statusPtr(IncidentStatusNew), InternalNotes: &notes}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestError_KindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("service: %w", NotFound("incident not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))

	msg, ok := ErrorMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "incident not found", msg)

	_, ok = ErrorMessage(errors.New("boom"))
	assert.False(t, ok)
}

func TestValidationAndLocationTypes(t *testing.T) {
	assert.True(t, ValidationFalseReport.IsValid())
	assert.False(t, ValidationType("upvote").IsValid())
	assert.True(t, LocationHospital.IsValid())
	assert.False(t, LocationType("school").IsValid())
	assert.True(t, MapLocationPatch{}.IsEmpty())
}

func TestInvalid_IsValidationKind(t *testing.T) {
	// Конструктор ошибки и запись голоса живут в одном пакете
	record := Validation{IncidentID: "inc-1", ValidationType: ValidationConfirm}
	err := Invalid("invalid validation type")

	assert.Equal(t, "inc-1", record.IncidentID)
	assert.ErrorIs(t, err, ErrValidation)
	msg, ok := ErrorMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid validation type", msg)
}
