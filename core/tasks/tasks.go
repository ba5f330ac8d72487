package tasks

import (
	"context"

	"guestdesk/core/config"
	"guestdesk/core/constants"
	"guestdesk/core/logger"

	"github.com/hibiken/asynq"
)

// Task type names shared by enqueuers and handlers.
const (
	TypeInviteDispatch         = "invite:dispatch"
	TypeTemplateUsageIncrement = "template:usage_increment"
)

var client *asynq.Client

// InitClient creates the shared asynq client used by services to enqueue
// background work.
func InitClient(cfg *config.Config) *asynq.Client {
	client = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return client
}

func Client() *asynq.Client { return client }

// NewServer creates the asynq worker server. Handlers are registered by the
// modules that own the task types.
func NewServer(cfg *config.Config) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				constants.QueueMessages: 6,
				constants.QueueDefault:  3,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("tasks: handler failed", "type", task.Type(), "error", err)
			}),
		},
	)
}

// Enqueue pushes a task onto a queue, logging instead of failing the caller
// when the broker is unavailable. Background work here is best effort.
func Enqueue(task *asynq.Task, opts ...asynq.Option) {
	if client == nil {
		logger.Warn("tasks: enqueue before client init", "type", task.Type())
		return
	}
	if _, err := client.Enqueue(task, opts...); err != nil {
		logger.Error("tasks: enqueue failed", "type", task.Type(), "error", err)
	}
}
