package cron

import (
	"context"
	"log"
	"time"

	"staygrid/config"
	blockedRepo "staygrid/database/repository/blocked"
	"staygrid/models"
	"staygrid/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBlockedPurge = "blocked:purge"

// InitPurgeWorker runs the async worker and its scheduler in background.
// The scheduler enqueues a nightly purge task that removes blocked-date
// rows older than the current day, keeping the collection bounded.
func InitPurgeWorker(repo blockedRepo.BlockedDateRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBlockedPurge, handlePurgeTask(repo))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.UTC,
	})
	if _, err := scheduler.Register("30 3 * * *", asynq.NewTask(TypeBlockedPurge, nil)); err != nil {
		utils.GetLogger().Error("Failed to register purge schedule", zap.Error(err))
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			utils.GetLogger().Error("Purge scheduler stopped", zap.Error(err))
		}
	}()

	go func() {
		log.Println("[PurgeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PurgeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PurgeWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePurgeTask(repo blockedRepo.BlockedDateRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := models.DateOf(time.Now().UTC()).String()
		deleted, err := repo.DeleteOlderThan(ctx, today)
		if err != nil {
			utils.GetLogger().Error("Blocked-date purge failed", zap.Error(err))
			return err
		}
		utils.GetLogger().Info("Blocked-date purge completed",
			zap.String("before", today),
			zap.Int64("deleted", deleted),
		)
		return nil
	}
}
