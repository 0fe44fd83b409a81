package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

func TestInMemory_PublishConsume(t *testing.T) {
	q := NewInMemory(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := q.Consume(ctx)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}

	amount := decimal.RequireFromString("1200.00")
	pub := NewEventPublisher(q, nil)
	if err := pub.Publish(ctx, domain.DomainEvent{Type: domain.EventEnrollmentPaid, Subject: "Ana", Amount: &amount}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-msgs:
		event, err := Decode(msg)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if event.Type != domain.EventEnrollmentPaid || event.Subject != "Ana" {
			t.Errorf("unexpected event %+v", event)
		}
		if event.Amount == nil || !event.Amount.Equal(amount) {
			t.Errorf("expected amount %s, got %v", amount, event.Amount)
		}
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}

	cancel()
	select {
	case _, ok := <-msgs:
		if ok {
			t.Error("expected the channel to close after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
}

func TestInMemory_PublishRespectsContext(t *testing.T) {
	q := NewInMemory(1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := q.Publish(ctx, Message{Type: "a"}); err != nil {
		t.Fatalf("first publish: %v", err)
	}
	if err := q.Publish(ctx, Message{Type: "b"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded on a full queue, got %v", err)
	}
}

type failingQueue struct{ calls int }

func (f *failingQueue) Publish(ctx context.Context, msg Message) error {
	f.calls++
	return errors.New("broker down")
}

func (f *failingQueue) Consume(ctx context.Context) (<-chan Message, error) { return nil, nil }
func (f *failingQueue) Close() error                                         { return nil }

func TestEventPublisher_BreakerOpens(t *testing.T) {
	fq := &failingQueue{}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "test",
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 3
		},
		Timeout: time.Minute,
	})
	pub := NewEventPublisher(fq, cb)

	for i := 0; i < 5; i++ {
		_ = pub.Publish(context.Background(), domain.DomainEvent{Type: domain.EventCourseCreated})
	}
	if fq.calls != 3 {
		t.Errorf("expected the breaker to stop calls after 3 failures, got %d", fq.calls)
	}
	err := pub.Publish(context.Background(), domain.DomainEvent{Type: domain.EventCourseCreated})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected open state, got %v", err)
	}
}
