// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"backmoney/config"
	"backmoney/models"
	"backmoney/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

func redisQueueOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	srv := asynq.NewServer(
		redisQueueOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask)

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

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("Invalid reminder payload", zap.Error(err))
		return err
	}

	// Delivery channels (SMS, WhatsApp, email) plug in here; for now the
	// reminder is recorded in the service log.
	logger.Info("Appointment reminder due",
		zap.String("appointmentID", p.AppointmentID),
		zap.String("tenantID", p.TenantID),
		zap.String("clientID", p.ClientID),
		zap.String("employeeID", p.EmployeeID),
		zap.String("date", p.Date),
		zap.String("startTime", p.StartTime),
	)
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
