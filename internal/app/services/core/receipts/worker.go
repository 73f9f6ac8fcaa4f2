package receipts

import (
	"context"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/app/services/shared/mailqueue"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	maxDeliveryAttempts = 3
	sendTimeout         = 15 * time.Second
)

// ackQueue is the slice of the mail queue the worker drives.
type ackQueue interface {
	Consume() (<-chan amqp.Delivery, error)
	Republish(ctx context.Context, body []byte, attempt int32) error
	PublishToDLQ(ctx context.Context, body []byte) error
}

// Worker drains the acknowledgment-email queue and sends each message
// over SMTP. A failed delivery is republished with an incremented
// attempt count; after maxDeliveryAttempts it is parked on the DLQ for
// operator inspection.
type Worker struct {
	queue  ackQueue
	mailer contracts.MailerService
	log    *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewWorker(queue *mailqueue.Service, mailer contracts.MailerService, log *zap.Logger) *Worker {
	return newWorker(queue, mailer, log)
}

func newWorker(queue ackQueue, mailer contracts.MailerService, log *zap.Logger) *Worker {
	return &Worker{
		queue:  queue,
		mailer: mailer,
		log:    log,
		done:   make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) error {
	deliveries, err := w.queue.Consume()
	if err != nil {
		return err
	}

	ctx, w.cancel = context.WithCancel(ctx)
	go w.run(ctx, deliveries)
	return nil
}

// Stop signals the consume loop and waits for in-flight work to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	<-w.done
}

func (w *Worker) run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				w.log.Warn("receipt worker delivery channel closed")
				return
			}
			w.handle(ctx, delivery)
		}
	}
}

func (w *Worker) handle(ctx context.Context, delivery amqp.Delivery) {
	var message contracts.EmailMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		w.log.Error("receipt worker received undecodable message", zap.Error(err))
		w.park(ctx, delivery)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	err := w.mailer.SendEmail(sendCtx, &message)
	cancel()
	if err == nil {
		if ackErr := delivery.Ack(false); ackErr != nil {
			w.log.Error("receipt worker ack failed", zap.Error(ackErr))
		}
		return
	}

	attempt := deliveryAttempt(delivery)
	w.log.Error("receipt worker send failed",
		zap.String("to", message.To),
		zap.Int32("attempt", attempt),
		zap.Error(err))

	if attempt >= maxDeliveryAttempts {
		w.park(ctx, delivery)
		return
	}
	if err := w.queue.Republish(ctx, delivery.Body, attempt+1); err != nil {
		w.log.Error("receipt worker republish failed", zap.Error(err))
		if nackErr := delivery.Nack(false, true); nackErr != nil {
			w.log.Error("receipt worker nack failed", zap.Error(nackErr))
		}
		return
	}
	if ackErr := delivery.Ack(false); ackErr != nil {
		w.log.Error("receipt worker ack failed", zap.Error(ackErr))
	}
}

// park acks the delivery off the main queue and copies it to the DLQ.
func (w *Worker) park(ctx context.Context, delivery amqp.Delivery) {
	if err := w.queue.PublishToDLQ(ctx, delivery.Body); err != nil {
		w.log.Error("receipt worker DLQ publish failed", zap.Error(err))
		if nackErr := delivery.Nack(false, true); nackErr != nil {
			w.log.Error("receipt worker nack failed", zap.Error(nackErr))
		}
		return
	}
	if err := delivery.Ack(false); err != nil {
		w.log.Error("receipt worker ack failed", zap.Error(err))
	}
}

// deliveryAttempt reads the attempt count stamped by Republish; a
// message without the header is on its first delivery.
func deliveryAttempt(delivery amqp.Delivery) int32 {
	if raw, ok := delivery.Headers[mailqueue.HeaderAttempts]; ok {
		switch count := raw.(type) {
		case int32:
			return count
		case int64:
			return int32(count)
		}
	}
	return 1
}
