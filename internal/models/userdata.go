package models

import (
	"encoding/json"
	"time"
)

// EmergencyPlan - семейный план действий пользователя при ЧС
type EmergencyPlan struct {
	ID        string          `json:"id" db:"id"`
	UserID    string          `json:"user_id" db:"user_id"`
	PlanData  json.RawMessage `json:"plan_data" db:"plan_data"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// ChecklistProgress - отметки пользователя в чек-листе тревожного рюкзака
type ChecklistProgress struct {
	ID            string          `json:"id" db:"id"`
	UserID        string          `json:"user_id" db:"user_id"`
	ChecklistData json.RawMessage `json:"checklist_data" db:"checklist_data"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
