package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Origin names the intake an article was published from.
type Origin string

const (
	OriginAdmin          Origin = "admin"
	OriginSubmission     Origin = "submission"
	OriginRawArticle     Origin = "raw_article"
	OriginWordSubmission Origin = "word_submission"
)

// Event announces that an article went live.
type Event struct {
	Action          string    `json:"action"`
	ArticleID       uint      `json:"article_id"`
	Origin          Origin    `json:"origin"`
	SourceID        uint      `json:"source_id,omitempty"`
	Category        string    `json:"category"`
	ContentLanguage string    `json:"content_language"`
	Timestamp       time.Time `json:"timestamp"`
}

// Notifier delivers publication events.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Notify(context.Context, Event) error { return nil }

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
}

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	log        *logrus.Logger
}

func NewRabbitMQ(cfg Config, log *logrus.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.WithFields(logrus.Fields{
		"exchange":    cfg.Exchange,
		"routing_key": cfg.RoutingKey,
	}).Info("connected to rabbitmq")

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		log:        log,
	}, nil
}

func (r *RabbitMQ) Notify(ctx context.Context, event Event) error {
	if event.Action == "" {
		event.Action = "published"
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    event.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"article_id": event.ArticleID,
		"origin":     event.Origin,
	}).Debug("published article event")

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
