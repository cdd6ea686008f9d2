package retry

import (
	"context"
	"math"
	"time"

	"pickem-tracker/internal/apierror"
)

// Config defines retry behavior for rate-limited calls.
type Config struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	BackoffMultiple float64
}

// DefaultConfig matches the upstream's documented tolerance.
var DefaultConfig = Config{
	MaxAttempts:     3,
	InitialDelay:    1 * time.Second,
	BackoffMultiple: 2.0,
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultConfig.MaxAttempts
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultConfig.InitialDelay
	}
	if c.BackoffMultiple <= 0 {
		c.BackoffMultiple = DefaultConfig.BackoffMultiple
	}
	return c
}

// Do runs op, retrying with exponential backoff while shouldRetry accepts
// the failure. A nil shouldRetry retries rate-limit errors only. Attempts
// are strictly sequential; the last error propagates unchanged once the
// attempt bound is exhausted.
func Do[T any](ctx context.Context, cfg Config, shouldRetry func(error) bool, op func(context.Context) (T, error)) (T, error) {
	cfg = cfg.withDefaults()
	if shouldRetry == nil {
		shouldRetry = apierror.IsRateLimit
	}

	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts-1 {
			break
		}
		if err := Sleep(ctx, backoff(attempt, cfg)); err != nil {
			return zero, err
		}
	}

	return zero, lastErr
}

// Sleep suspends for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func backoff(attempt int, cfg Config) time.Duration {
	return time.Duration(float64(cfg.InitialDelay) * math.Pow(cfg.BackoffMultiple, float64(attempt)))
}
