package ratelimit

import (
	"fmt"

	apierrors "github.com/Prakul111/vibe-code-project/internal/errors"
	"github.com/Prakul111/vibe-code-project/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// per-client request limiter for the create procedures
type Limiter struct {
	config  *Config
	limiter *limiter.Limiter
}

// creates a limiter backed by redis so counters are shared between api instances
func NewRedis(config *Config, client *redis.Client) (*Limiter, error) {
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: config.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit store: %w", err)
	}

	return New(config, store)
}

// creates an in-process limiter, used by tests and single-instance setups
func NewMemory(config *Config) (*Limiter, error) {
	return New(config, memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix: config.Prefix,
	}))
}

func New(config *Config, store limiter.Store) (*Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(config.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", config.Rate, err)
	}

	return &Limiter{
		config:  config,
		limiter: limiter.New(store, rate),
	}, nil
}

// returns a Gin middleware keyed by client IP
func (l *Limiter) Middleware() gin.HandlerFunc {
	limited := mgin.NewMiddleware(l.limiter,
		mgin.WithLimitReachedHandler(handleRateLimited),
		mgin.WithErrorHandler(handleStoreError),
	)

	return func(c *gin.Context) {
		if !l.config.Enabled || l.config.IsExemptPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		limited(c)
	}
}

func handleRateLimited(c *gin.Context) {
	logger.FromContext(c.Request.Context()).Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.Request.URL.Path)

	c.Header("Retry-After", "60")
	apierrors.TooManyRequests(c, "too many requests. please slow down.")
	c.Abort()
}

// a broken limiter store lets the request through
func handleStoreError(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Error("rate limit store failed", "error", err)
	c.Next()
}
