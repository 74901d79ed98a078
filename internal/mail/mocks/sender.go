package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dconn.dev/portfolio/internal/mail"
)

// Sender is a mock for mail.Sender.
type Sender struct {
	mock.Mock
}

func (m *Sender) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
