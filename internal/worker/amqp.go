package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/streadway/amqp"
)

// Options configures the RabbitMQ side of the worker.
type Options struct {
	URL      string
	Queue    string // durable queue of MatchJob messages
	Exchange string // topic exchange receiving JobUpdate events
	Workers  int
}

// RoutingKey is the routing key used for updates about jobID.
func RoutingKey(jobID string) string {
	return "match." + jobID
}

// AMQPPublisher publishes job updates to a topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	exchange string
}

// NewAMQPPublisher declares exchange on conn and returns a publisher for it.
func NewAMQPPublisher(conn *amqp.Connection, exchange string) (*AMQPPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, exchange: exchange}, nil
}

// Publish sends update as JSON with routing key match.<job_id>.
func (p *AMQPPublisher) Publish(_ context.Context, update types.JobUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal job update: %w", err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	return ch.Publish(p.exchange, RoutingKey(update.JobID.String()), false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// Pool runs a fixed number of queue consumers, each on its own connection.
type Pool struct {
	opts      Options
	processor *Processor
}

// NewPool creates a consumer pool. Fewer than one worker means one.
func NewPool(opts Options, processor *Processor) *Pool {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Pool{opts: opts, processor: processor}
}

// Run starts the consumers and blocks until ctx is cancelled or every
// consumer has stopped. The first consumer error is returned.
func (p *Pool) Run(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	wg.Add(p.opts.Workers)
	for i := 0; i < p.opts.Workers; i++ {
		slog.Info("worker started", "worker", i+1, "queue", p.opts.Queue)
		go func(id int) {
			defer wg.Done()
			if err := p.consume(ctx, id); err != nil {
				slog.Error("worker stopped", "worker", id, "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(i + 1)
	}
	wg.Wait()

	return firstErr
}

func (p *Pool) consume(ctx context.Context, id int) error {
	conn, err := amqp.Dial(p.opts.URL)
	if err != nil {
		return fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.opts.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", p.opts.Queue, err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	msgs, err := ch.Consume(p.opts.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %w", p.opts.Queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			if err := p.processor.Handle(ctx, msg.Body); err != nil {
				slog.Warn("match job failed", "worker", id, "error", err)
			}
			// Failed jobs are reported on the exchange, not redelivered
			if err := msg.Ack(false); err != nil {
				slog.Error("failed to ack message", "worker", id, "error", err)
			}
		}
	}
}
