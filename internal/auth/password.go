package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/shenikar/incident_reporting_system/internal/models"
)

// HashPassword возвращает bcrypt-хэш пароля с солью
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", models.Invalid("password required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", models.Invalid("password is too long")
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// dummyHash - хэш, с которым сравнивается пароль неизвестного пользователя
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("unknown-user-password"), bcrypt.DefaultCost)
	return hash
})

// VerifyPassword сравнивает пароль с хэшем. Сравнение выполняется bcrypt за постоянное время.
// При пустом hash пароль сравнивается с фиктивным хэшем и результат всегда false,
// так что вход с неизвестным email занимает столько же времени, сколько с известным.
func VerifyPassword(password, hash string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
