package importer

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
	Prefetch   int
}

// Subscription is an open consumer on the import queue.
type Subscription struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	Deliveries <-chan amqp.Delivery
}

func Subscribe(cfg Config, log *logrus.Logger) (*Subscription, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	fail := func(step string, err error) (*Subscription, error) {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}
	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fail("declare queue", err)
	}
	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fail("bind queue", err)
	}

	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 10
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fail("set qos", err)
	}

	deliveries, err := ch.Consume(q.Name, "newsportal-importer", false, false, false, false, nil)
	if err != nil {
		return fail("consume", err)
	}

	log.WithFields(logrus.Fields{
		"exchange":    cfg.Exchange,
		"queue":       q.Name,
		"routing_key": cfg.RoutingKey,
	}).Info("subscribed to import queue")

	return &Subscription{conn: conn, channel: ch, Deliveries: deliveries}, nil
}

func (s *Subscription) Close() error {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
