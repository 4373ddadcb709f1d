package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"nardoo_storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const DefaultExchange = "storefront.exchange"

// Message is the envelope consumed by the NestJS microservice transport.
type Message struct {
	Pattern string      `json:"pattern"`
	Data    interface{} `json:"data"`
	ID      string      `json:"id,omitempty"`
}

// RabbitMQPublisher publishes ledger and analytics events to a topic exchange,
// using the event pattern as routing key.

type RabbitMQPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

var _ interfaces.IEventPublisher = (*RabbitMQPublisher)(nil)

func NewRabbitMQPublisher(amqpURL, exchange string) (*RabbitMQPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Printf("[events][rabbitmq] publisher ready exchange=%s", exchange)
	return &RabbitMQPublisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, pattern string, data interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := encodeMessage(pattern, data, uuid.NewString())
	if err != nil {
		return err
	}

	// amqp.Channel is not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		p.exchange,
		pattern,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	log.Printf("[events][rabbitmq] published pattern=%s exchange=%s bytes=%d", pattern, p.exchange, len(body))
	return nil
}

func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func encodeMessage(pattern string, data interface{}, id string) ([]byte, error) {
	body, err := json.Marshal(Message{Pattern: pattern, Data: data, ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	return body, nil
}
