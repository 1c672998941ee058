package v1

import (
	"github.com/shenikar/incident_reporting_system/internal/models"
)

// UserToResponse преобразует пользователя в DTO без хэша пароля
func UserToResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

// SessionToResponse преобразует выданную сессию в DTO
func SessionToResponse(session *models.Session) TokenResponse {
	return TokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresAt:   session.ExpiresAt,
		User:        UserToResponse(session.User),
	}
}

func (r RegisterRequest) toModel() models.Registration {
	return models.Registration{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Phone:    r.Phone,
	}
}

// DTOToSubmission преобразует запрос в отчет для нормализации
func DTOToSubmission(req SubmitIncidentRequest) models.IncidentSubmission {
	sub := models.IncidentSubmission{
		ID:            req.ID,
		IncidentType:  req.IncidentType,
		IncidentTypeA: req.IncidentTypeAlt,
		Date:          req.Date,
		Time:          req.Time,
		Timestamp:     req.Timestamp,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Description:   req.Description,
		ReporterPhone: req.ReporterPhone,
		Phone:         req.Phone,
		ReporterName:  req.ReporterName,
		SenderName:    req.SenderName,
	}
	if req.Location != nil {
		sub.Location = &models.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
	}
	if req.Images != nil {
		sub.Images = make([]models.IncidentImage, len(req.Images))
		for i, img := range req.Images {
			sub.Images[i] = models.IncidentImage{ID: img.ID, Data: img.Data, Name: img.Name, Size: img.Size}
		}
	}
	return sub
}

// ModelToIncidentResponse преобразует инцидент в публичный DTO
func ModelToIncidentResponse(incident *models.Incident) IncidentResponse {
	images := make([]IncidentImageDTO, len(incident.Images))
	for i, img := range incident.Images {
		images[i] = IncidentImageDTO{ID: img.ID, Data: img.Data, Name: img.Name, Size: img.Size}
	}
	return IncidentResponse{
		ID:            incident.ID,
		IncidentType:  incident.IncidentType,
		Date:          incident.Date,
		Time:          incident.Time,
		Latitude:      incident.Latitude,
		Longitude:     incident.Longitude,
		Description:   incident.Description,
		ReporterPhone: incident.ReporterPhone,
		ReporterName:  incident.ReporterName,
		Images:        images,
		Status:        string(incident.Status),
		CreatedAt:     incident.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует список инцидентов в публичные DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

// ModelToAdminIncidentResponse добавляет к публичному DTO внутренние заметки
func ModelToAdminIncidentResponse(incident *models.Incident) AdminIncidentResponse {
	return AdminIncidentResponse{
		IncidentResponse: ModelToIncidentResponse(incident),
		InternalNotes:    incident.InternalNotes,
	}
}

func ModelsToAdminIncidentResponses(incidents []*models.Incident) []AdminIncidentResponse {
	responses := make([]AdminIncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToAdminIncidentResponse(incident)
	}
	return responses
}

func (r UpdateIncidentRequest) toPatch() models.IncidentPatch {
	patch := models.IncidentPatch{InternalNotes: r.InternalNotes}
	if r.Status != nil {
		status := models.IncidentStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// StatsToResponse преобразует статистику голосов в DTO
func StatsToResponse(stats *models.ValidationStats) ValidationStatsResponse {
	breakdown := make(map[string]int, len(stats.CountsByType))
	for t, n := range stats.CountsByType {
		breakdown[string(t)] = n
	}
	resp := ValidationStatsResponse{
		IncidentID:          stats.IncidentID,
		TotalValidations:    stats.TotalValidations,
		Confirmations:       stats.CountsByType[models.ValidationConfirm],
		ValidationBreakdown: breakdown,
		UserValidated:       stats.CallerHasValidated,
	}
	if stats.CallerValidationType != nil {
		t := string(*stats.CallerValidationType)
		resp.UserValidationType = &t
	}
	return resp
}

func (r HotlineRequest) toModel(id string) *models.Hotline {
	return &models.Hotline{
		ID:       id,
		Label:    r.Label,
		Number:   r.Number,
		Category: r.Category,
	}
}

func HotlineToResponse(h *models.Hotline) HotlineResponse {
	return HotlineResponse{ID: h.ID, Label: h.Label, Number: h.Number, Category: h.Category}
}

func HotlinesToResponses(hotlines []*models.Hotline) []HotlineResponse {
	responses := make([]HotlineResponse, len(hotlines))
	for i, h := range hotlines {
		responses[i] = HotlineToResponse(h)
	}
	return responses
}

func (r CreateLocationRequest) toModel() *models.MapLocation {
	location := &models.MapLocation{
		Type:     models.LocationType(r.Type),
		Name:     r.Name,
		Address:  r.Address,
		Capacity: r.Capacity,
		Services: r.Services,
		Hotline:  r.Hotline,
	}
	if r.Lat != nil {
		location.Lat = *r.Lat
	}
	if r.Lng != nil {
		location.Lng = *r.Lng
	}
	return location
}

func (r UpdateLocationRequest) toPatch() models.MapLocationPatch {
	patch := models.MapLocationPatch{
		Name:     r.Name,
		Address:  r.Address,
		Lat:      r.Lat,
		Lng:      r.Lng,
		Capacity: r.Capacity,
		Services: r.Services,
		Hotline:  r.Hotline,
	}
	if r.Type != nil {
		t := models.LocationType(*r.Type)
		patch.Type = &t
	}
	return patch
}

func LocationToResponse(l *models.MapLocation) LocationResponse {
	return LocationResponse{
		ID:       l.ID,
		Type:     string(l.Type),
		Name:     l.Name,
		Address:  l.Address,
		Lat:      l.Lat,
		Lng:      l.Lng,
		Capacity: l.Capacity,
		Services: l.Services,
		Hotline:  l.Hotline,
	}
}

func LocationsToResponses(locations []*models.MapLocation) []LocationResponse {
	responses := make([]LocationResponse, len(locations))
	for i, l := range locations {
		responses[i] = LocationToResponse(l)
	}
	return responses
}

// PlanToResponse возвращает nil, если план не сохранен
func PlanToResponse(plan *models.EmergencyPlan) *PlanResponse {
	if plan == nil {
		return nil
	}
	return &PlanResponse{ID: plan.ID, UserID: plan.UserID, PlanData: plan.PlanData, UpdatedAt: plan.UpdatedAt}
}

// ChecklistToResponse возвращает nil, если отметок нет
func ChecklistToResponse(checklist *models.ChecklistProgress) *ChecklistResponse {
	if checklist == nil {
		return nil
	}
	return &ChecklistResponse{
		ID:            checklist.ID,
		UserID:        checklist.UserID,
		ChecklistData: checklist.ChecklistData,
		UpdatedAt:     checklist.UpdatedAt,
	}
}
