// Package jobs provides scheduled background tasks for the pizzeria.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// KitchenProgressJob moves every paid, unfinished order one state forward
// per run: PLACED to PREPARING, PREPARING to OUT_FOR_DELIVERY and
// OUT_FOR_DELIVERY to DELIVERED. Orders failing the fulfillment checks are
// skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&kitchenHandler, cfg.KitchenJobSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six field cron expressions with a leading seconds field.
// The default "*/30 * * * * *" runs twice a minute.
package jobs
