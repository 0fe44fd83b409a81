package queue

import (
	"context"
	"encoding/json"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/sony/gobreaker"
)

// EventPublisher puts domain events on a Queue behind a circuit breaker.
type EventPublisher struct {
	q  Queue
	cb *gobreaker.CircuitBreaker
}

var _ domain.EventPublisher = (*EventPublisher)(nil)

func NewEventPublisher(q Queue, cb *gobreaker.CircuitBreaker) *EventPublisher {
	return &EventPublisher{q: q, cb: cb}
}

func (p *EventPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := Message{Type: event.Type, Body: body}

	if p.cb == nil {
		return p.q.Publish(ctx, msg)
	}
	_, err = p.cb.Execute(func() (interface{}, error) {
		return nil, p.q.Publish(ctx, msg)
	})
	return err
}

// Decode reads the domain event carried by msg.
func Decode(msg Message) (domain.DomainEvent, error) {
	var event domain.DomainEvent
	err := json.Unmarshal(msg.Body, &event)
	if event.Type == "" {
		event.Type = msg.Type
	}
	return event, err
}
