// Package importer turns scraped-article messages into raw articles
// awaiting curation.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"newsportal/internal/models"
	"newsportal/internal/repository"
)

var ErrMalformedMessage = errors.New("malformed article message")

type Outcome string

const (
	OutcomeInserted  Outcome = "inserted"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeIgnored   Outcome = "ignored"
)

// ArticleMessage is the scraper payload. Keys match case-insensitively;
// the URL fields also accept both snake_case and camelCase spellings.
type ArticleMessage struct {
	Action  string         `json:"action"`
	Article ScrapedArticle `json:"article"`
}

type ScrapedArticle struct {
	Title             string `json:"title"`
	CanonicalURL      string `json:"canonicalUrl"`
	CanonicalURLSnake string `json:"canonical_url"`
	URL               string `json:"url"`
	Source            string `json:"source"`
	SourceID          string `json:"sourceId"`
	VideoURL          string `json:"video_url"`
	VideoURLCamel     string `json:"videoUrl"`
}

func (a ScrapedArticle) link() string {
	for _, v := range []string{a.CanonicalURL, a.CanonicalURLSnake, a.URL} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func (a ScrapedArticle) video() string {
	if v := strings.TrimSpace(a.VideoURL); v != "" {
		return v
	}
	return strings.TrimSpace(a.VideoURLCamel)
}

func (a ScrapedArticle) source() string {
	if s := strings.TrimSpace(a.Source); s != "" {
		return s
	}
	return strings.TrimSpace(a.SourceID)
}

type Consumer struct {
	repo repository.RawArticleRepository
	log  *logrus.Logger
}

func NewConsumer(repo repository.RawArticleRepository, log *logrus.Logger) *Consumer {
	return &Consumer{repo: repo, log: log}
}

// HandleMessage stores one message. Malformed input is reported with
// ErrMalformedMessage; any other error is a storage failure.
func (c *Consumer) HandleMessage(ctx context.Context, body []byte) (Outcome, error) {
	var msg ArticleMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	switch strings.ToLower(strings.TrimSpace(msg.Action)) {
	case "", "create", "update":
	default:
		return OutcomeIgnored, nil
	}

	title := strings.TrimSpace(msg.Article.Title)
	link := msg.Article.link()
	if title == "" || link == "" {
		return "", fmt.Errorf("%w: title and url are required", ErrMalformedMessage)
	}

	inserted, err := c.repo.InsertIfAbsent(ctx, &models.RawArticle{
		Title:    title,
		URL:      link,
		Source:   msg.Article.source(),
		VideoURL: msg.Article.video(),
		Status:   models.StatusPending,
	})
	if err != nil {
		return "", fmt.Errorf("store raw article: %w", err)
	}
	if !inserted {
		return OutcomeDuplicate, nil
	}
	return OutcomeInserted, nil
}

// Run consumes deliveries until ctx is done or the channel closes. Stored,
// duplicate and ignored messages are acked; malformed ones are dropped;
// storage failures are requeued.
func (c *Consumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	outcome, err := c.HandleMessage(ctx, d.Body)
	entry := c.log.WithField("delivery_tag", d.DeliveryTag)

	switch {
	case errors.Is(err, ErrMalformedMessage):
		entry.WithError(err).Warn("dropping malformed message")
		if nackErr := d.Nack(false, false); nackErr != nil {
			entry.WithError(nackErr).Error("nack failed")
		}
	case err != nil:
		entry.WithError(err).Error("failed to store raw article, requeueing")
		if nackErr := d.Nack(false, true); nackErr != nil {
			entry.WithError(nackErr).Error("nack failed")
		}
	default:
		entry.WithField("outcome", outcome).Debug("message processed")
		if ackErr := d.Ack(false); ackErr != nil {
			entry.WithError(ackErr).Error("ack failed")
		}
	}
}
