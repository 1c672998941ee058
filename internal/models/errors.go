package models

import "errors"

// Виды ошибок предметной области. Сервисы возвращают их обернутыми в *Error,
// хендлеры сопоставляют вид ошибки с HTTP-статусом через errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidToken = errors.New("invalid token")
)

// Error - ошибка с видом и человекочитаемым сообщением для клиента
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Invalid создает ошибку некорректного ввода
func Invalid(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

// Unauthorized создает ошибку отсутствующих или неверных учетных данных
func Unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

// Forbidden создает ошибку недостаточных прав
func Forbidden(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

// NotFound создает ошибку отсутствующей сущности
func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Conflict создает ошибку нарушения уникальности
func Conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

// ErrorMessage возвращает сообщение для клиента, если ошибка относится к предметной области
func ErrorMessage(err error) (string, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message, true
	}
	return "", false
}
