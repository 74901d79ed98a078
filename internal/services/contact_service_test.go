package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dconn.dev/portfolio/internal/mail"
	"dconn.dev/portfolio/internal/mail/mocks"
	"dconn.dev/portfolio/internal/models"
)

var testContactConfig = ContactConfig{Recipient: "me@dconn.dev", From: "site@dconn.dev"}

func TestDecodeContactSubmission(t *testing.T) {
	sub, err := DecodeContactSubmission("application/json", []byte(`{"name":"A","email":"a@b.com","message":"hi"}`))
	require.NoError(t, err)
	require.Equal(t, models.ContactSubmission{Name: "A", Email: "a@b.com", Message: "hi"}, sub)

	sub, err = DecodeContactSubmission("application/x-www-form-urlencoded; charset=utf-8", []byte("name=A&email=not-an-email&message=hello+there"))
	require.NoError(t, err)
	require.Equal(t, models.ContactSubmission{Name: "A", Email: "not-an-email", Message: "hello there"}, sub)
}

func TestDecodeContactSubmissionInvalid(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		field       string
	}{
		{name: "absent", contentType: "application/json", body: ""},
		{name: "null", contentType: "application/json", body: "null"},
		{name: "malformed", contentType: "application/json", body: `{"name":`},
		{name: "wrong type", contentType: "application/json", body: `{"name":1,"email":"a@b.com","message":"hi"}`},
		{name: "missing message", contentType: "application/json", body: `{"name":"A","email":"a@b.com"}`, field: "message"},
		{name: "blank name", contentType: "application/json", body: `{"name":"  ","email":"a@b.com","message":"hi"}`, field: "name"},
		{name: "form missing email", contentType: "application/x-www-form-urlencoded", body: "name=A&message=hi", field: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeContactSubmission(tt.contentType, []byte(tt.body))
			require.ErrorIs(t, err, ErrInvalidSubmission)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSubmitRelaysOnce(t *testing.T) {
	ctx := context.Background()
	sender := &mocks.Sender{}
	sender.On("Send", ctx, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.ReplyTo == "a@b.com" &&
			msg.To == "me@dconn.dev" &&
			msg.From == "site@dconn.dev" &&
			msg.Subject == "New contact form submission from A" &&
			msg.Headers[SubmissionHeader] == "sub-1"
	})).Return(nil).Once()

	svc := NewContactService(sender, testContactConfig)
	svc.newID = func() string { return "sub-1" }

	res, err := svc.Submit(ctx, models.ContactSubmission{Name: "A", Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)
	require.Equal(t, &models.ContactResult{ID: "sub-1", Message: AcknowledgementMessage}, res)
	sender.AssertNumberOfCalls(t, "Send", 1)
	sender.AssertExpectations(t)
}

func TestSubmitBodyCarriesAllFields(t *testing.T) {
	var got mail.Message
	svc := NewContactService(mail.SenderFunc(func(_ context.Context, msg mail.Message) error {
		got = msg
		return nil
	}), testContactConfig)

	_, err := svc.Submit(context.Background(), models.ContactSubmission{Name: "A", Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)
	require.Equal(t, "Name: A\nEmail: a@b.com\n\nMessage:\nhi\n", got.Body)
}

func TestSubmitDeliveryFailure(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("dial tcp 10.0.0.1:587: connection refused")
	sender := &mocks.Sender{}
	sender.On("Send", ctx, mock.Anything).Return(cause).Once()

	svc := NewContactService(sender, testContactConfig)
	svc.newID = func() string { return "sub-2" }

	res, err := svc.Submit(ctx, models.ContactSubmission{Name: "A", Email: "a@b.com", Message: "hi"})
	require.Nil(t, res)
	require.ErrorIs(t, err, ErrDeliveryFailed)
	require.ErrorIs(t, err, cause)

	var derr *DeliveryError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, "sub-2", derr.SubmissionID)
	require.NotContains(t, DeliveryFailureMessage, "connection refused")
	sender.AssertNumberOfCalls(t, "Send", 1)
}
