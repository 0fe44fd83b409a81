package service

import (
	"context"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/metrics"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 2 * time.Second

// publish hands event to the pipeline. Failures are logged and counted, never returned:
// the write that produced the event has already been committed.
func publish(ctx context.Context, events domain.EventPublisher, event domain.DomainEvent) {
	if events == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := events.Publish(pubCtx, event); err != nil {
		metrics.EventsPublished.WithLabelValues(event.Type, "failed").Inc()
		log.Warn().Err(err).Str("event", event.Type).Str("subject", event.Subject).Msg("failed to publish domain event")
		return
	}
	metrics.EventsPublished.WithLabelValues(event.Type, "ok").Inc()
}
