package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-retry"
)

// WaitReady pings the backend until it answers, backing off exponentially
// between attempts. A networked database may still be starting when the
// server boots.
func WaitReady(ctx context.Context, c *Conn, attempts uint64, base time.Duration) error {
	backoff := retry.WithMaxRetries(attempts, retry.NewExponential(base))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("backend", string(c.Dialect())).Msg("database not ready")
			return retry.RetryableError(err)
		}
		return nil
	})
}
