package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds the SMTP relay settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPSender sends messages through an authenticated SMTP relay with STARTTLS
type SMTPSender struct {
	client *gomail.Client
}

// NewSMTPSender creates a sender for cfg. No connection is opened until Send.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPSender{client: client}, nil
}

// Send dials the relay and delivers msg
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func buildMsg(msg Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	// Reply-To is the submitter's address as typed, even when it does not parse.
	if msg.ReplyTo != "" {
		m.SetGenHeader(gomail.HeaderReplyTo, headerValue(msg.ReplyTo))
	}
	m.Subject(headerValue(msg.Subject))
	for name, value := range msg.Headers {
		m.SetGenHeader(gomail.Header(name), headerValue(value))
	}
	m.SetMessageID()
	m.SetDate()
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return m, nil
}
