package v1

import (
	"encoding/json"
	"time"
)

// RegisterRequest DTO для регистрации и создания первого администратора
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,max=72"`
	FullName string  `json:"full_name" validate:"required,max=255"`
	Phone    *string `json:"phone,omitempty"`
}

// LoginRequest DTO для входа
// @Description DTO для входа по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO с данными пользователя (без хэша пароля)
// @Description DTO с данными пользователя
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse DTO с выданным токеном
// @Description DTO с access-токеном и пользователем
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// LocationRequest - вложенные координаты текущей версии клиента
type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// IncidentImageDTO - изображение, встроенное в отчет
type IncidentImageDTO struct {
	ID   *float64 `json:"id,omitempty"`
	Data string   `json:"data"`
	Name *string  `json:"name,omitempty"`
	Size *int64   `json:"size,omitempty"`
}

// SubmitIncidentRequest DTO для отправки отчета. Принимает поля обеих версий клиента.
// @Description DTO для отправки отчета об инциденте
type SubmitIncidentRequest struct {
	ID              *string            `json:"id,omitempty"`
	IncidentType    *string            `json:"incident_type,omitempty"`
	IncidentTypeAlt *string            `json:"incidentType,omitempty"`
	Date            *string            `json:"date,omitempty"`
	Time            *string            `json:"time,omitempty"`
	Timestamp       *string            `json:"timestamp,omitempty"`
	Latitude        *float64           `json:"latitude,omitempty"`
	Longitude       *float64           `json:"longitude,omitempty"`
	Location        *LocationRequest   `json:"location,omitempty"`
	Description     *string            `json:"description,omitempty"`
	Images          []IncidentImageDTO `json:"images,omitempty"`
	ReporterPhone   *string            `json:"reporter_phone,omitempty"`
	Phone           *string            `json:"phone,omitempty"`
	ReporterName    *string            `json:"reporter_name,omitempty"`
	SenderName      *string            `json:"sender_name,omitempty"`
}

// IncidentResponse DTO для публичного представления инцидента
// @Description DTO инцидента без внутренних заметок
type IncidentResponse struct {
	ID            string             `json:"id"`
	IncidentType  string             `json:"incident_type"`
	Date          string             `json:"date"`
	Time          string             `json:"time"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	Description   string             `json:"description"`
	ReporterPhone *string            `json:"reporter_phone,omitempty"`
	ReporterName  *string            `json:"reporter_name,omitempty"`
	Images        []IncidentImageDTO `json:"images"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// AdminIncidentResponse DTO инцидента для администратора
// @Description DTO инцидента с внутренними заметками
type AdminIncidentResponse struct {
	IncidentResponse
	InternalNotes string `json:"internal_notes"`
}

// UpdateIncidentRequest DTO для модерации инцидента
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Status        *string `json:"status,omitempty"`
	InternalNotes *string `json:"internal_notes,omitempty"`
}

// ValidateIncidentRequest DTO голоса пользователя
// @Description DTO для подтверждения инцидента
type ValidateIncidentRequest struct {
	ValidationType string `json:"validation_type,omitempty"`
}

// ValidationStatsResponse DTO статистики голосов
// @Description DTO статистики подтверждений инцидента
type ValidationStatsResponse struct {
	IncidentID          string         `json:"incident_id"`
	TotalValidations    int            `json:"total_validations"`
	Confirmations       int            `json:"confirmations"`
	ValidationBreakdown map[string]int `json:"validation_breakdown"`
	UserValidated       bool           `json:"user_validated"`
	UserValidationType  *string        `json:"user_validation_type"`
}

// HotlineRequest DTO для создания и замены номера
// @Description DTO номера экстренной службы
type HotlineRequest struct {
	Label    string `json:"label" validate:"required,max=255"`
	Number   string `json:"number" validate:"required,max=64"`
	Category string `json:"category" validate:"required,max=64"`
}

// HotlineResponse DTO номера экстренной службы
type HotlineResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Number   string `json:"number"`
	Category string `json:"category"`
}

// CreateLocationRequest DTO для создания объекта карты
// @Description DTO объекта карты
type CreateLocationRequest struct {
	Type     string   `json:"type"`
	Name     string   `json:"name" validate:"required"`
	Address  string   `json:"address" validate:"required"`
	Lat      *float64 `json:"lat" validate:"required,latitude"`
	Lng      *float64 `json:"lng" validate:"required,longitude"`
	Capacity *string  `json:"capacity,omitempty"`
	Services *string  `json:"services,omitempty"`
	Hotline  *string  `json:"hotline,omitempty"`
}

// UpdateLocationRequest DTO для частичного обновления объекта карты
// @Description DTO для частичного обновления объекта карты
type UpdateLocationRequest struct {
	Type     *string  `json:"type,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Address  *string  `json:"address,omitempty"`
	Lat      *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng      *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
	Capacity *string  `json:"capacity,omitempty"`
	Services *string  `json:"services,omitempty"`
	Hotline  *string  `json:"hotline,omitempty"`
}

// LocationResponse DTO объекта карты
type LocationResponse struct {
	ID       int     `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Capacity *string `json:"capacity,omitempty"`
	Services *string `json:"services,omitempty"`
	Hotline  *string `json:"hotline,omitempty"`
}

// SavePlanRequest DTO для сохранения плана действий
// @Description DTO плана действий пользователя
type SavePlanRequest struct {
	PlanData json.RawMessage `json:"plan_data" swaggertype:"object"`
}

// SaveChecklistRequest DTO для сохранения чек-листа
// @Description DTO отметок чек-листа пользователя
type SaveChecklistRequest struct {
	ChecklistData json.RawMessage `json:"checklist_data" swaggertype:"array,object"`
}

// PlanResponse DTO плана действий
type PlanResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	PlanData  json.RawMessage `json:"plan_data" swaggertype:"object"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ChecklistResponse DTO отметок чек-листа
type ChecklistResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ChecklistData json.RawMessage `json:"checklist_data" swaggertype:"array,object"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ErrorResponse DTO ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse DTO ответа с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidateIncidentResponse DTO результата голосования
type ValidateIncidentResponse struct {
	Message string `json:"message"`
	Outcome string `json:"outcome"`
}

// OKResponse DTO подтверждения операции
type OKResponse struct {
	OK bool `json:"ok"`
}
