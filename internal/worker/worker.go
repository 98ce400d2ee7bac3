package worker

import (
	"context"

	"github.com/lash-app/backend/internal/config"
	emailProvider "github.com/lash-app/backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendUserVerificationEmail(ctx context.Context, email string, verificationCode string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email, deps.Config.Auth.PendingRegistrationTTL),
	}
}
