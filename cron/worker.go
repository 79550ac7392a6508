package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"oficio/config"
	"oficio/models"
	"oficio/services/notification"
	"oficio/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// NewReminderClient returns the asynq client used to enqueue reminder tasks.
func NewReminderClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifier notification.Notifier) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifier))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifier notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] Triggering reminder for lead %s → %s", p.LeadID, p.Title)

		if err := notifier.SendReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] Failed to deliver reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
