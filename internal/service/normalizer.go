package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting_system/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Форматы ISO-8601, которые присылают клиенты в поле timestamp
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	dateLayout,
}

// NormalizeIncident приводит отчет любого из поддерживаемых форматов к канонической записи.
// Правила применяются по порядку: тип, координаты, дата и время, контакты, id, изображения, описание.
func NormalizeIncident(sub models.IncidentSubmission, now time.Time) (*models.Incident, error) {
	now = now.UTC()

	incidentType := firstNonEmpty(sub.IncidentType, sub.IncidentTypeA)
	if incidentType == "" {
		return nil, models.Invalid("incident_type is required")
	}

	lat, lng, ok := resolveCoordinates(sub)
	if !ok {
		return nil, models.Invalid("location (latitude/longitude) is required")
	}

	date := firstNonEmpty(sub.Date)
	clock := firstNonEmpty(sub.Time)
	if (date == "" || clock == "") && sub.Timestamp != nil {
		if ts, ok := parseTimestamp(*sub.Timestamp); ok {
			if date == "" {
				date = ts.Format(dateLayout)
			}
			if clock == "" {
				clock = ts.Format(timeLayout)
			}
		}
	}
	if date == "" {
		date = now.Format(dateLayout)
	}
	if clock == "" {
		clock = now.Format(timeLayout)
	}

	id := firstNonEmpty(sub.ID)
	if id == "" {
		id = uuid.NewString()
	}

	description := firstNonEmpty(sub.Description)
	if description == "" {
		return nil, models.Invalid("description is required")
	}

	images := sub.Images
	if images == nil {
		images = []models.IncidentImage{}
	}
	for i, img := range images {
		if strings.TrimSpace(img.Data) == "" {
			return nil, models.Invalid(fmt.Sprintf("images[%d]: image data is required", i))
		}
	}

	return &models.Incident{
		ID:            id,
		IncidentType:  incidentType,
		Date:          date,
		Time:          clock,
		Latitude:      lat,
		Longitude:     lng,
		Description:   description,
		ReporterPhone: firstPresent(sub.ReporterPhone, sub.Phone),
		ReporterName:  firstPresent(sub.ReporterName, sub.SenderName),
		Images:        images,
		InternalNotes: "",
		Status:        models.IncidentStatusNew,
		CreatedAt:     now,
	}, nil
}

// resolveCoordinates берет пару верхнего уровня, если заданы обе координаты,
// иначе пару из вложенного объекта location
func resolveCoordinates(sub models.IncidentSubmission) (float64, float64, bool) {
	if sub.Latitude != nil && sub.Longitude != nil {
		return *sub.Latitude, *sub.Longitude, true
	}
	if sub.Location != nil && sub.Location.Latitude != nil && sub.Location.Longitude != nil {
		return *sub.Location.Latitude, *sub.Location.Longitude, true
	}
	return 0, 0, false
}

// parseTimestamp разбирает ISO-8601 строку. Суффикс Z трактуется как +00:00,
// время без смещения считается UTC. Ошибки разбора не возвращаются.
func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if strings.HasSuffix(raw, "Z") {
		raw = strings.TrimSuffix(raw, "Z") + "+00:00"
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return *v
		}
	}
	return ""
}

func firstPresent(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
