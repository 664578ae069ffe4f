package worker

// alert_cron.go
// Background goroutine that enqueues a daily low-stock alert when an alert
// recipient is configured. A Redis SETNX key keyed by date guarantees at
// most one alert per day even when multiple instances run the cron.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	alertTickInterval = 1 * time.Hour
	alertSentKeyTTL   = 48 * time.Hour
)

// StartAlertCron launches a background goroutine that ticks hourly and
// enqueues the daily low-stock alert once per calendar day.
// It respects the context for graceful shutdown.
func StartAlertCron(ctx context.Context, rdb *redis.Client, dispatcher *Dispatcher, recipient string) {
	if recipient == "" {
		log.Info().Msg("alert_cron: no alert recipient configured — disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(alertTickInterval)
		defer ticker.Stop()

		log.Info().Str("recipient", recipient).Msg("alert_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("alert_cron: shutting down")
				return
			case <-ticker.C:
				tickAlert(ctx, rdb, dispatcher, recipient)
			}
		}
	}()
}

func tickAlert(ctx context.Context, rdb *redis.Client, dispatcher *Dispatcher, recipient string) {
	key := "alerts:lowstock:sent:" + time.Now().Format("2006-01-02")
	ok, err := rdb.SetNX(ctx, key, "1", alertSentKeyTTL).Result()
	if err != nil {
		log.Error().Err(err).Msg("alert_cron: dedupe check failed")
		return
	}
	if !ok {
		return // already sent today
	}

	jobID, err := dispatcher.EnqueueLowStockAlert(ctx, recipient)
	if err != nil {
		// Release the dedupe key so the next tick can retry
		_ = rdb.Del(ctx, key).Err()
		log.Error().Err(err).Msg("alert_cron: failed to enqueue alert")
		return
	}
	log.Info().Str("job_id", jobID).Msg("alert_cron: daily low-stock alert enqueued")
}
