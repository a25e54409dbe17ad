package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"grindsphere/config"
	"grindsphere/models"
	"grindsphere/services/notification"
	"grindsphere/services/tasks"

	"github.com/hibiken/asynq"
)

// InitPushWorker runs the async push-delivery worker in background.
func InitPushWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePushSend, handlePushTask(notifSvc))

	go func() {
		log.Println("[PushWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PushWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PushWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePushTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PushWorker] invalid payload: %v", err)
			return err
		}

		if err := notifSvc.SendPushNotification(ctx, p.UserID, p.Title, p.Body, p.Data); err != nil {
			log.Printf("[PushWorker] failed to send notification: %v", err)
			return err
		}
		return nil
	}
}
