package utils

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"newsportal/internal/config"
)

// Mailer delivers a plain-text message to one recipient.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, message string) error
}

// SMTPMailer sends mail over STARTTLS with PLAIN auth.
type SMTPMailer struct {
	cfg config.MailConfig
	log *logrus.Logger
}

func NewSMTPMailer(cfg config.MailConfig, log *logrus.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// NewMailer returns an SMTP mailer when a host is configured and a logging
// mailer otherwise.
func NewMailer(cfg config.MailConfig, log *logrus.Logger) Mailer {
	if cfg.SMTPHost == "" {
		log.Warn("SMTP host not configured, outgoing mail will only be logged")
		return NewLogMailer(log)
	}
	return NewSMTPMailer(cfg, log)
}

func (m *SMTPMailer) Send(ctx context.Context, recipient, subject, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	smtpAddr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	client, err := smtp.Dial(smtpAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: m.cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err = client.Mail(m.cfg.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to create mail writer: %w", err)
	}

	if _, err = writer.Write([]byte(composeMessage(m.cfg.Sender, recipient, subject, message))); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close mail writer: %w", err)
	}

	if err = client.Quit(); err != nil {
		m.log.WithError(err).Warn("SMTP connection did not close cleanly")
	}

	m.log.WithFields(logrus.Fields{"recipient": recipient, "subject": subject}).Info("email sent")
	return nil
}

func composeMessage(sender, recipient, subject, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", sender)
	fmt.Fprintf(&b, "To: %s\r\n", recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(message)
	return b.String()
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	log *logrus.Logger
}

func NewLogMailer(log *logrus.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, recipient, subject, message string) error {
	m.log.WithFields(logrus.Fields{
		"recipient": recipient,
		"subject":   subject,
		"body":      message,
	}).Info("email not sent, SMTP disabled")
	return nil
}
