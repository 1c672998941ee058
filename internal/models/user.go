package models

import "time"

// User - учетная запись гражданина или администратора
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Registration - данные для создания учетной записи
type Registration struct {
	Email    string
	Password string
	FullName string
	Phone    *string
}

// Session - выданный токен вместе с пользователем
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *User
}
