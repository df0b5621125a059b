package events

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher delivers events to RabbitMQ over a single cached connection.
// Publishing is fire-and-forget from the caller's perspective: errors are
// logged and returned but must never interrupt the request flow that
// produced the event. A Publisher with an empty URL is a no-op, so local
// setups run without a broker.
type Publisher struct {
	url string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

func (p *Publisher) PublishInvoiceRequested(ctx context.Context, e InvoiceRequestedEvent) error {
	return p.publish(ctx, QueueInvoiceRequested, e)
}

func (p *Publisher) PublishStallStatusChanged(ctx context.Context, e StallStatusChangedEvent) error {
	return p.publish(ctx, QueueStallStatusChanged, e)
}

// Close shuts down the cached connection. Safe to call without one.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

func (p *Publisher) publish(ctx context.Context, queue string, event any) error {
	if p.url == "" {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.send(ctx, queue, pub)
	if err == nil {
		return nil
	}

	// The cached channel may have died with the broker; drop it and
	// retry once over a fresh connection before giving up.
	p.reset()
	if err = p.send(ctx, queue, pub); err != nil {
		log.Printf("rabbitmq: publish to %s failed: %v", queue, err)
		return err
	}
	return nil
}

func (p *Publisher) send(ctx context.Context, queue string, pub amqp.Publishing) error {
	ch, err := p.channel()
	if err != nil {
		return err
	}
	// Durable so messages survive broker restarts; declare is idempotent.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, "", queue, false, false, pub)
}

// channel returns the cached channel, dialing the broker on first use or
// after reset. Callers hold p.mu.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil {
		return p.ch, nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	p.ch = ch
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
