package main

import (
	"context"
	"log"
	"time"

	"librify/internal/activities"
	"librify/internal/config"
	"librify/internal/storage"
	"librify/internal/workflows"

	"github.com/joho/godotenv"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	c, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	w := worker.New(c, cfg.TemporalTaskQueue, worker.Options{})
	workflows.Register(w)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := storage.NewDB(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	a := activities.New(cfg, db)
	activities.Register(w, a)

	// Idempotent cron start; an already-running schedule is fine.
	_, err = c.ExecuteWorkflow(context.Background(), client.StartWorkflowOptions{
		ID:                    "due-reminder",
		TaskQueue:             cfg.TemporalTaskQueue,
		CronSchedule:          cfg.ReminderCron,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}, workflows.DueReminderWorkflow, workflows.DueReminderInput{WindowDays: cfg.ReminderWindowDays})
	if err != nil {
		log.Printf("due-reminder cron start: %v", err)
	}

	log.Printf("librify worker listening on %s queue=%s cron=%q", cfg.TemporalAddress, cfg.TemporalTaskQueue, cfg.ReminderCron)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatal(err)
	}
}
