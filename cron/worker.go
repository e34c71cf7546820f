package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wayfare/config"
	"wayfare/services/planning"

	"github.com/hibiken/asynq"
)

const TypePlanRebuild = "plan:rebuild"

// RebuildPayload identifies the trip whose plan must be regenerated.
type RebuildPayload struct {
	TripID string `json:"tripId"`
}

// NewQueueClient returns an asynq client for enqueuing rebuild tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// EnqueueRebuild schedules a full plan regeneration for the trip. Input
// changes (a new hotel choice, a new date range) go through here so the
// caller never waits on the external collaborators.
func EnqueueRebuild(client *asynq.Client, tripID string) error {
	payload, err := json.Marshal(RebuildPayload{TripID: tripID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypePlanRebuild, payload)
	_, err = client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(2*time.Minute))
	return err
}

// InitRebuildWorker runs the async worker in background.
func InitRebuildWorker(planner planning.PlanningService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePlanRebuild, handleRebuildTask(planner))

	// Start async worker with retry logic
	go func() {
		log.Println("[RebuildWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RebuildWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RebuildWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleRebuildTask(planner planning.PlanningService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p RebuildPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RebuildWorker] invalid payload: %v", err)
			return err
		}

		if err := planner.RebuildTrip(ctx, p.TripID); err != nil {
			log.Printf("[RebuildWorker] rebuild failed for trip %s: %v", p.TripID, err)
			return err
		}
		return nil
	}
}
