// Package mail delivers outbound email for the contact form.
package mail

import (
	"context"
	"errors"
	"strings"
)

// ErrNotConfigured is returned by DisabledSender for every message.
var ErrNotConfigured = errors.New("mail: smtp is not configured")

// Message is a single plain-text email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
	Headers map[string]string
}

// Sender delivers one message. Implementations make a single attempt.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// DisabledSender is used when no SMTP server is configured.
type DisabledSender struct{}

func (DisabledSender) Send(context.Context, Message) error {
	return ErrNotConfigured
}

// headerValue strips line breaks so user input cannot start a new header.
func headerValue(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
