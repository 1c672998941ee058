package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const authRateLimitPrefix = "ratelimit:auth"

// NewAuthRateLimiter ограничивает частоту запросов к маршрутам входа и регистрации по IP.
// rate задается в формате ulule/limiter, например "20-M".
func NewAuthRateLimiter(client *redis.Client, rate string, log *logrus.Logger) (gin.HandlerFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   authRateLimitPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit store: %w", err)
	}

	return mgin.NewMiddleware(limiter.New(store, parsed),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			log.WithField("client_ip", c.ClientIP()).Warn("Auth rate limit reached")
			c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			log.WithError(err).Error("Rate limiter store failed")
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service unavailable"})
		}),
	), nil
}
