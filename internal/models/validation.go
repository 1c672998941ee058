package models

import "time"

// ValidationType - вид голоса пользователя по инциденту
type ValidationType string

const (
	ValidationConfirm     ValidationType = "confirm"
	ValidationResolved    ValidationType = "resolved"
	ValidationFalseReport ValidationType = "false_report"
)

func (t ValidationType) IsValid() bool {
	switch t {
	case ValidationConfirm, ValidationResolved, ValidationFalseReport:
		return true
	}
	return false
}

// Validation - подтверждение инцидента пользователем. На пару (инцидент, пользователь)
// существует не более одной записи.
type Validation struct {
	ID             string         `json:"id" db:"id"`
	IncidentID     string         `json:"incident_id" db:"incident_id"`
	UserID         string         `json:"user_id" db:"user_id"`
	ValidationType ValidationType `json:"validation_type" db:"validation_type"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}

// ValidationOutcome - результат вызова Validate
type ValidationOutcome string

const (
	ValidationCreated ValidationOutcome = "created"
	ValidationUpdated ValidationOutcome = "updated"
)

// ValidationCount - количество голосов одного вида
type ValidationCount struct {
	ValidationType ValidationType `db:"validation_type"`
	Count          int            `db:"count"`
}

// ValidationStats - агрегированная статистика голосов по инциденту
type ValidationStats struct {
	IncidentID           string
	TotalValidations     int
	CountsByType         map[ValidationType]int
	CallerHasValidated   bool
	CallerValidationType *ValidationType
}
