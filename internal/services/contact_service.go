package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"dconn.dev/portfolio/internal/mail"
	"dconn.dev/portfolio/internal/models"
)

// SubmissionHeader carries the submission id on relayed mail
const SubmissionHeader = "X-Contact-Submission"

const (
	// AcknowledgementMessage is returned after a successful relay
	AcknowledgementMessage = "Thank you for your message! I'll get back to you soon."
	// DeliveryFailureMessage is the only detail a submitter sees when relaying fails
	DeliveryFailureMessage = "Sorry, your message could not be sent right now. Please try again later."
)

// ContactConfig holds the fixed addresses used for relayed mail
type ContactConfig struct {
	Recipient string
	From      string
}

// ContactService validates contact submissions and relays them by email
type ContactService struct {
	sender mail.Sender
	cfg    ContactConfig
	newID  func() string
}

// NewContactService creates a new ContactService
func NewContactService(sender mail.Sender, cfg ContactConfig) *ContactService {
	return &ContactService{
		sender: sender,
		cfg:    cfg,
		newID:  uuid.NewString,
	}
}

// DecodeContactSubmission parses a JSON or form-encoded body into a complete
// submission. Any problem is a *ValidationError.
func DecodeContactSubmission(contentType string, body []byte) (models.ContactSubmission, error) {
	var sub models.ContactSubmission
	if len(bytes.TrimSpace(body)) == 0 {
		return sub, &ValidationError{Reason: "request body is empty"}
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return sub, &ValidationError{Reason: "request body is not well-formed"}
		}
		sub.Name = values.Get("name")
		sub.Email = values.Get("email")
		sub.Message = values.Get("message")
	default:
		var payload *models.ContactSubmission
		if err := json.Unmarshal(body, &payload); err != nil {
			return sub, &ValidationError{Reason: "request body is not well-formed"}
		}
		if payload == nil {
			return sub, &ValidationError{Reason: "request body is empty"}
		}
		sub = *payload
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)

	for _, f := range []struct{ name, value string }{
		{"name", sub.Name},
		{"email", sub.Email},
		{"message", sub.Message},
	} {
		if f.value == "" {
			return models.ContactSubmission{}, &ValidationError{Field: f.name, Reason: "is required"}
		}
	}
	return sub, nil
}

// Submit relays a validated submission with a single send attempt
func (s *ContactService) Submit(ctx context.Context, sub models.ContactSubmission) (*models.ContactResult, error) {
	id := s.newID()
	msg := mail.Message{
		From:    s.cfg.From,
		To:      s.cfg.Recipient,
		ReplyTo: sub.Email,
		Subject: "New contact form submission from " + sub.Name,
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", sub.Name, sub.Email, sub.Message),
		Headers: map[string]string{SubmissionHeader: id},
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return nil, &DeliveryError{SubmissionID: id, Err: err}
	}
	return &models.ContactResult{ID: id, Message: AcknowledgementMessage}, nil
}
