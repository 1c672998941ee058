package models

import "time"

// IncidentEventType - вид события жизненного цикла инцидента
type IncidentEventType string

const (
	EventIncidentCreated       IncidentEventType = "incident.created"
	EventIncidentStatusChanged IncidentEventType = "incident.status_changed"
)

// IncidentEvent - событие для внешней диспетчерской системы
type IncidentEvent struct {
	Type         IncidentEventType `json:"type"`
	IncidentID   string            `json:"incident_id"`
	IncidentType string            `json:"incident_type"`
	Status       IncidentStatus    `json:"status"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	OccurredAt   time.Time         `json:"occurred_at"`
}

// NewIncidentEvent строит событие по текущему состоянию инцидента
func NewIncidentEvent(eventType IncidentEventType, incident *Incident, at time.Time) IncidentEvent {
	return IncidentEvent{
		Type:         eventType,
		IncidentID:   incident.ID,
		IncidentType: incident.IncidentType,
		Status:       incident.Status,
		Latitude:     incident.Latitude,
		Longitude:    incident.Longitude,
		OccurredAt:   at.UTC(),
	}
}
