package service

import (
	"context"
	"fmt"

	queueClient "github.com/lash-app/backend/internal/queue/client"
	"github.com/lash-app/backend/internal/queue/task"
	"github.com/lash-app/backend/pkg/logger"

	"go.uber.org/zap"
)

type emailService struct {
	queue queueClient.Enqueuer
}

func newEmailService(queue queueClient.Enqueuer) *emailService {
	return &emailService{
		queue: queue,
	}
}

type VerificationEmailInput struct {
	Email            string
	VerificationCode string
}

// SendUserVerificationEmail schedules delivery. The worker retries failed sends.
func (s *emailService) SendUserVerificationEmail(ctx context.Context, input VerificationEmailInput) error {
	t, err := task.NewSendEmailTask(input.Email, input.VerificationCode)
	if err != nil {
		return fmt.Errorf("create send email task failed: %w", err)
	}

	info, err := s.queue.EnqueueContext(ctx, t)
	if err != nil {
		return fmt.Errorf("enqueue send email task failed: %w", err)
	}

	logger.Debug("verification email enqueued", zap.String("task_id", info.ID), zap.String("email", input.Email))

	return nil
}
