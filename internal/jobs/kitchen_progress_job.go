package jobs

import (
	"context"
	"time"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultKitchenSchedule advances kitchen orders every 30 seconds.
const DefaultKitchenSchedule = "*/30 * * * * *"

// KitchenHandler advances paid orders one state forward.
// *commands.AdvanceKitchenOrdersCommandHandler satisfies it.
type KitchenHandler interface {
	Handle(ctx context.Context, cmd commands.AdvanceKitchenOrdersCommand) (int, error)
}

// KitchenProgressJob manages the scheduled progress of paid orders through
// PREPARING, OUT_FOR_DELIVERY and DELIVERED.
type KitchenProgressJob struct {
	handler  KitchenHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewKitchenProgressJob creates the job. schedule is a six field cron
// expression with seconds; an empty one selects DefaultKitchenSchedule.
func NewKitchenProgressJob(handler KitchenHandler, schedule string, logger *zap.Logger) *KitchenProgressJob {
	if schedule == "" {
		schedule = DefaultKitchenSchedule
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KitchenProgressJob{
		handler:  handler,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "kitchen_progress_job")),
	}
}

// Start begins advancing orders on the schedule.
func (j *KitchenProgressJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Kitchen progress job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs a single pass and returns the number of orders that moved.
func (j *KitchenProgressJob) Run(ctx context.Context) int {
	advanced, err := j.handler.Handle(ctx, commands.NewAdvanceKitchenOrdersCommand())
	if err != nil {
		j.logger.Error("Kitchen progress job failed", zap.Error(err))
		return 0
	}
	if advanced > 0 {
		j.logger.Debug("Kitchen orders advanced", zap.Int("count", advanced))
	}
	return advanced
}

// Stop stops the schedule and waits for a running pass to finish.
func (j *KitchenProgressJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Kitchen progress job stopped")
}
