package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// statusOverride меняет HTTP-статус для вида ошибки на конкретном маршруте
type statusOverride struct {
	kind   error
	status int
}

var errorStatuses = []statusOverride{
	{kind: models.ErrValidation, status: http.StatusBadRequest},
	{kind: models.ErrUnauthorized, status: http.StatusUnauthorized},
	{kind: models.ErrInvalidToken, status: http.StatusUnauthorized},
	{kind: models.ErrForbidden, status: http.StatusForbidden},
	{kind: models.ErrNotFound, status: http.StatusNotFound},
	{kind: models.ErrConflict, status: http.StatusConflict},
}

func statusFor(err error, overrides []statusOverride) int {
	for _, o := range overrides {
		if errors.Is(err, o.kind) {
			return o.status
		}
	}
	for _, s := range errorStatuses {
		if errors.Is(err, s.kind) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// respondError пишет ответ об ошибке и прерывает обработку запроса.
// Сообщения внутренних ошибок клиенту не передаются.
func respondError(c *gin.Context, log *logrus.Entry, err error, overrides ...statusOverride) {
	status := statusFor(err, overrides)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		c.AbortWithStatusJSON(status, ErrorResponse{Error: "internal server error"})
		return
	}

	message, ok := models.ErrorMessage(err)
	if !ok {
		message = err.Error()
	}
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	log.WithError(err).WithField("status", status).Warn("Request rejected")
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
