package service

import (
	"fmt"

	"github.com/shenikar/incident_reporting_system/internal/models"
)

// wrapUnlessDomain оставляет ошибки предметной области как есть,
// чтобы хендлер мог выбрать статус ответа, а остальные оборачивает
func wrapUnlessDomain(action string, err error) error {
	if _, ok := models.ErrorMessage(err); ok {
		return err
	}
	return fmt.Errorf("service: %s: %w", action, err)
}
