package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/goose"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retry calls fn until it succeeds, sleeping delays[i] before attempt i+2,
// so len(delays)+1 attempts are made at most. Errors coded ENOTFOUND or
// EINVALID are returned without retrying. The logger, if not nil, receives
// one debug record per retry.
func Retry[T any](ctx context.Context, delays []time.Duration, logger *slog.Logger, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if code := goose.ErrorCode(err); code == goose.ENOTFOUND || code == goose.EINVALID {
			break
		}
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Debug("retry", "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, lastErr
}
