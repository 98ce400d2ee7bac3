package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/lash-app/backend/internal/config"
	emailProvider "github.com/lash-app/backend/pkg/email"
	"github.com/lash-app/backend/pkg/logger"

	"go.uber.org/zap"
)

type emailSender struct {
	sender  emailProvider.Sender
	config  config.EmailConfig
	codeTTL time.Duration
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
	codeTTL time.Duration,
) *emailSender {
	return &emailSender{
		sender:  sender,
		config:  config,
		codeTTL: codeTTL,
	}
}

type verificationEmailInput struct {
	VerificationCode string
	ExpiresInMinutes int
}

func (s *emailSender) SendUserVerificationEmail(ctx context.Context, email string, verificationCode string) error {
	if !s.config.Enabled {
		logger.Debug("email delivery disabled, verification code not sent", zap.String("email", email), zap.String("code", verificationCode))
		return nil
	}

	templateInput := verificationEmailInput{
		VerificationCode: verificationCode,
		ExpiresInMinutes: int(s.codeTTL.Minutes()),
	}
	sendInput := emailProvider.SendEmailInput{Subject: s.config.Subjects.Verification, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Verification, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		logger.Error("verification email send failed", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
