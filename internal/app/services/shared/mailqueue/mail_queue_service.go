package mailqueue

import (
	"context"
	"sangha-service/internal/pkg/constvars"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	DeadLetterSuffix = "_dlq"

	// HeaderAttempts carries the delivery attempt count across
	// republishes, since classic queues expose no broker-side counter.
	HeaderAttempts = "x-attempts"
)

// Service owns the durable acknowledgment-email queue and its DLQ.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
}

// NewService declares the durable queues and applies QoS so a slow SMTP
// host cannot flood the worker with unacked deliveries.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(queueName+DeadLetterSuffix, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

func (s *Service) Publish(ctx context.Context, body []byte) error {
	message := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	return s.ch.PublishWithContext(ctx, "", s.queueName, false, false, message)
}

// Republish requeues a failed message with its attempt count stamped in
// the headers, so the consumer can enforce an exact retry threshold.
func (s *Service) Republish(ctx context.Context, body []byte, attempt int32) error {
	message := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Headers:      amqp.Table{HeaderAttempts: attempt},
	}
	return s.ch.PublishWithContext(ctx, "", s.queueName, false, false, message)
}

// PublishToDLQ parks a message that repeatedly failed delivery.
func (s *Service) PublishToDLQ(ctx context.Context, body []byte) error {
	message := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	return s.ch.PublishWithContext(ctx, "", s.queueName+DeadLetterSuffix, false, false, message)
}

// Consume returns a manual-ack delivery channel for the worker.
func (s *Service) Consume() (<-chan amqp.Delivery, error) {
	return s.ch.Consume(s.queueName, "", false, false, false, false, nil)
}

func (s *Service) Close() error {
	return s.ch.Close()
}
