package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader   = "X-Webhook-Signature"
	defaultPopTimeout = 5 * time.Second
	// deadLetterKey хранит события, которые не удалось доставить после всех повторов
	deadLetterKey  = "incident_events:dead"
	requeueTimeout = 2 * time.Second
)

// Options - параметры доставки событий
type Options struct {
	URL        string
	Secret     string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// Worker забирает события из очереди Redis и доставляет их во внешнюю систему диспетчеризации
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	opts        Options
	httpClient  *resty.Client
	popTimeout  time.Duration
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, opts Options) *Worker {
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.MaxRetries).
		SetRetryWaitTime(opts.BaseDelay).
		SetRetryMaxWaitTime(opts.BaseDelay * 8).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp == nil || resp.StatusCode() >= http.StatusInternalServerError ||
				resp.StatusCode() == http.StatusTooManyRequests
		})

	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		opts:        opts,
		httpClient:  client,
		popTimeout:  defaultPopTimeout,
	}
}

// Start запускает горутину обработки очереди. Горутина завершается при отмене ctx,
// закрытый канал сообщает об остановке.
func (w *Worker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting webhook worker...")
	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}
			w.processNext(ctx)
		}
	}()
	return done
}

// processNext ждет одно событие не дольше w.popTimeout и доставляет его
func (w *Worker) processNext(ctx context.Context) {
	result, err := w.redisClient.BRPop(ctx, w.popTimeout, eventQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return
		}
		w.logger.WithError(err).Error("Failed to pop incident event from Redis")
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
		}
		return
	}

	// result[0] - ключ, result[1] - значение
	payload := result[1]
	var event models.IncidentEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal incident event from Redis")
		w.park(ctx, deadLetterKey, payload)
		return
	}

	if err := w.deliver(ctx, event, payload); err != nil {
		log := w.logger.WithError(err).WithField("incident_id", event.IncidentID)
		if ctx.Err() != nil {
			// Доставка прервана остановкой воркера: событие возвращается в голову очереди
			log.Warn("Webhook delivery interrupted, returning event to the queue")
			w.park(ctx, eventQueueKey, payload)
			return
		}
		log.Error("Failed to deliver incident event, moving it to the dead-letter list")
		w.park(ctx, deadLetterKey, payload)
	}
}

// park кладет событие в список key. BRPOP забирает элементы справа, поэтому RPUSH
// возвращает событие первым в очередь, а в списке недоставленных порядок не важен.
func (w *Worker) park(ctx context.Context, key, payload string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requeueTimeout)
	defer cancel()
	if err := w.redisClient.RPush(ctx, key, payload).Err(); err != nil {
		w.logger.WithError(err).WithField("key", key).Error("Failed to park incident event, event is lost")
	}
}

func (w *Worker) deliver(ctx context.Context, event models.IncidentEvent, rawPayload string) error {
	log := w.logger.WithFields(logrus.Fields{
		"incident_id": event.IncidentID,
		"event_type":  event.Type,
	})

	if w.opts.URL == "" {
		log.Debug("Webhook URL is not configured. Skipping delivery.")
		return nil
	}

	req := w.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rawPayload)
	if w.opts.Secret != "" {
		req.SetHeader(signatureHeader, Sign(rawPayload, w.opts.Secret))
	}

	resp, err := req.Post(w.opts.URL)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook delivery failed with status code %d after %d attempts", resp.StatusCode(), resp.Request.Attempt)
	}

	log.Info("Webhook delivered successfully.")
	return nil
}

// Sign возвращает HMAC-SHA256 подпись тела запроса в hex
func Sign(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
