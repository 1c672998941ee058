package models

import (
	"time"
)

// IncidentStatus - статус модерации инцидента
type IncidentStatus string

const (
	IncidentStatusNew        IncidentStatus = "new"
	IncidentStatusInProgress IncidentStatus = "in-progress"
	IncidentStatusResolved   IncidentStatus = "resolved"
)

// IsValid сообщает, является ли значение одним из допустимых статусов.
// Переходы между статусами не ограничены: любой статус можно выставить из любого.
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusNew, IncidentStatusInProgress, IncidentStatusResolved:
		return true
	}
	return false
}

// IncidentImage - изображение, встроенное в отчет об инциденте
type IncidentImage struct {
	ID   *float64 `json:"id,omitempty"`
	Data string   `json:"data"`
	Name *string  `json:"name,omitempty"`
	Size *int64   `json:"size,omitempty"`
}

// Incident - каноническая запись об инциденте
type Incident struct {
	ID            string          `json:"id" db:"id"`
	IncidentType  string          `json:"incident_type" db:"incident_type"`
	Date          string          `json:"date" db:"date"`
	Time          string          `json:"time" db:"time"`
	Latitude      float64         `json:"latitude" db:"latitude"`
	Longitude     float64         `json:"longitude" db:"longitude"`
	Description   string          `json:"description" db:"description"`
	ReporterPhone *string         `json:"reporter_phone,omitempty" db:"reporter_phone"`
	ReporterName  *string         `json:"reporter_name,omitempty" db:"reporter_name"`
	Images        []IncidentImage `json:"images" db:"images"`
	InternalNotes string          `json:"internal_notes" db:"internal_notes"`
	Status        IncidentStatus  `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// Location - вложенный объект координат из текущей версии клиента
type Location struct {
	Latitude  *float64
	Longitude *float64
}

// IncidentSubmission - входящий отчет в любом из двух поддерживаемых форматов
// (устаревший и текущий клиент). Все поля необязательны, разбор выполняет NormalizeIncident.
type IncidentSubmission struct {
	ID            *string
	IncidentType  *string
	IncidentTypeA *string // incidentType
	Date          *string
	Time          *string
	Timestamp     *string
	Latitude      *float64
	Longitude     *float64
	Location      *Location
	Description   *string
	Images        []IncidentImage
	ReporterPhone *string
	Phone         *string
	ReporterName  *string
	SenderName    *string
}

// IncidentPatch - частичное обновление инцидента администратором.
// nil означает, что поле не передано.
type IncidentPatch struct {
	Status        *IncidentStatus
	InternalNotes *string
}

// Validate проверяет, что патч содержит хотя бы одно поле и корректный статус
func (p IncidentPatch) Validate() error {
	if p.Status == nil && p.InternalNotes == nil {
		return Invalid("No fields to update")
	}
	if p.Status != nil && !p.Status.IsValid() {
		return Invalid("Invalid status")
	}
	return nil
}

// IncidentFilter - фильтр административного списка инцидентов
type IncidentFilter struct {
	Status *IncidentStatus
	Query  string
	Limit  int
}
