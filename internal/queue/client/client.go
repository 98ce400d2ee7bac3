package client

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/lash-app/backend/internal/config"
	"github.com/lash-app/backend/internal/queue/asynqserver"
)

// Enqueuer is the part of *asynq.Client the services depend on.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func New(cfg config.Cache) *asynq.Client {
	return asynq.NewClient(asynqserver.RedisOptions(cfg))
}
