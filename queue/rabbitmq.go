package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// RabbitMQQueue publishes to and consumes from a durable queue on the default exchange.
type RabbitMQQueue struct {
	conn      *amqp.Connection
	ch        *amqp.Channel
	queueName string
}

func NewRabbitMQQueue(amqpURL, queueName string) (*RabbitMQQueue, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitMQQueue{conn: conn, ch: ch, queueName: queueName}, nil
}

func (q *RabbitMQQueue) Publish(ctx context.Context, msg Message) error {
	return q.ch.PublishWithContext(
		ctx,
		"",          // exchange (default)
		q.queueName, // routing key == queue name
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         msg.Type,
			Body:         msg.Body,
		},
	)
}

func (q *RabbitMQQueue) Consume(ctx context.Context) (<-chan Message, error) {
	deliveries, err := q.ch.ConsumeWithContext(ctx, q.queueName, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume %s: %w", q.queueName, err)
	}

	out := make(chan Message)
	go func() {
		defer close(out)
		for {
			select {
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				if !json.Valid(d.Body) {
					log.Warn().Str("queue", q.queueName).Msg("dropping malformed message")
					d.Nack(false, false)
					continue
				}
				select {
				case out <- Message{Type: d.Type, Body: d.Body}:
					d.Ack(false)
				case <-ctx.Done():
					d.Nack(false, true)
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (q *RabbitMQQueue) Close() error {
	if q.ch != nil {
		if err := q.ch.Close(); err != nil {
			return err
		}
	}
	if q.conn != nil {
		return q.conn.Close()
	}
	return nil
}
