package producer

import (
	"context"
	"time"

	"go-hrms/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// outboxBatchSize bounds one drain pass; HR bulk uploads can queue a few
// hundred events in a burst and the rest wait for the next tick.
const outboxBatchSize = 50

func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := drainOutbox(ctx, repo, writer, log); err != nil {
				log.Error("drain outbox failed", zap.Error(err))
			}
		}
	}
}

// drainOutbox publishes one batch of pending events. A publish failure
// marks the event for backoff retry and never blocks the rest of the
// batch.
func drainOutbox(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer messageWriter,
	logger *zap.Logger,
) error {
	pending, err := repo.ListPending(ctx, outboxBatchSize)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return nil
	}

	var sent, failed int
	for _, event := range pending {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			failed++
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	logger.Info("outbox batch drained",
		zap.Int("pending", len(pending)),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)

	return nil
}
