package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"newsportal/internal/publisher"
)

type fakeTx struct {
	calls int
}

func (f *fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []publisher.Event
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, event publisher.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.err
}

type sentMail struct {
	recipient, subject, body string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, recipient, subject, body string) error {
	m.sent = append(m.sent, sentMail{recipient, subject, body})
	return m.err
}

var errBoom = errors.New("boom")

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func kannadaWords(n int) string {
	return strings.TrimSpace(strings.Repeat("ಫಲಿತಾಂಶ ", n))
}
