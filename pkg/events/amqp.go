package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

// Broker publishes and consumes model updates over RabbitMQ.
type Broker struct {
	conn       *amqp.Connection
	instanceID uuid.UUID
	store      string
	key        string
	log        *slog.Logger
}

// Dial connects to RabbitMQ. store and key describe where models are persisted.
func Dial(url string, instanceID uuid.UUID, store, key string, log *slog.Logger) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Broker{conn: conn, instanceID: instanceID, store: store, key: key, log: log}, nil
}

func (b *Broker) Close() error { return b.conn.Close() }

func declareExchange(ch *amqp.Channel) error {
	return ch.ExchangeDeclare(
		Exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
}

// ModelUpdated publishes the persisted model's id.
func (b *Broker) ModelUpdated(ctx context.Context, m vectorizer.Model) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()
	if err := declareExchange(ch); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	body, err := json.Marshal(ModelUpdate{
		ModelID:    m.ID,
		InstanceID: b.instanceID,
		Store:      b.store,
		Key:        b.key,
		FittedAt:   m.FittedAt,
	})
	if err != nil {
		return err
	}
	return ch.Publish(
		Exchange,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   m.ID.String(),
			Body:        body,
		},
	)
}

// Consume binds a private queue to the exchange and reloads r for every update
// published by another instance. It returns when ctx is done or the channel closes.
func (b *Broker) Consume(ctx context.Context, r Reloader) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()
	if err := declareExchange(ch); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	q, err := ch.QueueDeclare(
		"",    // server-named
		false, // durable
		true,  // auto-delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, RoutingKey, Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	msgs, err := ch.Consume(
		q.Name,
		"screening-"+b.instanceID.String(), // consumer tag
		true,                               // auto-ack
		true,                               // exclusive
		false,                              // no-local
		false,                              // no-wait
		nil,                                // arguments
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	b.log.Info("listening for model updates", "exchange", Exchange, "queue", q.Name)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("model update channel closed")
			}
			reloaded, err := handleUpdate(ctx, msg.Body, b.instanceID, r)
			if err != nil {
				b.log.Warn("model update", "err", err)
				continue
			}
			if reloaded {
				b.log.Info("model reloaded after remote update", "message_id", msg.MessageId)
			}
		}
	}
}
