package tasks

import (
	"encoding/json"
	"fmt"

	"grindsphere/config"
	"grindsphere/models"

	"github.com/hibiken/asynq"
)

const TypePushSend = "push:send"

// PushEnqueuer queues push notifications for asynchronous delivery.
type PushEnqueuer interface {
	EnqueuePush(p models.PushPayload) error
}

// NewPushTask builds an asynq task from a push payload.
func NewPushTask(payload models.PushPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePushSend, b), nil
}

// Enqueuer is the production PushEnqueuer backed by the Redis task queue.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer creates an Enqueuer against the configured Redis queue DB.
func NewEnqueuer() *Enqueuer {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &Enqueuer{client: client}
}

// EnqueuePush queues a push payload for the worker.
func (e *Enqueuer) EnqueuePush(p models.PushPayload) error {
	task, err := NewPushTask(p)
	if err != nil {
		return fmt.Errorf("failed to build push task: %w", err)
	}
	if _, err := e.client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue push task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}
