package asynqserver

import (
	"github.com/hibiken/asynq"
	"github.com/lash-app/backend/internal/cache"
	"github.com/lash-app/backend/internal/config"
	"github.com/lash-app/backend/internal/queue/processor"
	"github.com/lash-app/backend/internal/queue/task"
	"github.com/lash-app/backend/internal/worker"
	"github.com/lash-app/backend/pkg/logger"
)

func New(cfg *config.Config, workers *worker.Workers) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(workers)
	srv := asynq.NewServer(
		RedisOptions(cfg.Cache),
		asynq.Config{
			Concurrency: cfg.Queue.Concurrency,
			LogLevel:    asynq.ErrorLevel,
			Logger:      logger.AsynqLogger{},
			Queues:      queues,
		},
	)

	return srv, mux
}

func RedisOptions(cfg config.Cache) asynq.RedisConnOpt {
	var opts asynq.RedisConnOpt
	if cfg.Type == cache.RedisTypeCluster {
		opts = asynq.RedisClusterClientOpt{Addrs: cfg.RedisCluster.Addresses, Password: cfg.RedisCluster.Password}
	} else {
		opts = asynq.RedisClientOpt{Addr: cfg.Redis.Address, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	}
	return opts
}

func getQueues(workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(task.SendEmailTaskName, processor.NewSendEmailProcessor(workers))
	queues := map[string]int{
		task.SendEmailQueueName: 1,
	}
	return mux, queues
}
