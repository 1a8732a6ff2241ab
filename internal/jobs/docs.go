// Package jobs provides scheduled background tasks for the canteen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with a leading seconds field.
//
// # Available Jobs
//
// 1. StatisticsBroadcastJob - Recomputes queue statistics, publishes
// QUEUE_STATISTICS to the admin channel and refreshes the active orders
// gauge. Runs every 30 seconds unless STATISTICS_SCHEDULE says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dispatcher, cfg.StatisticsSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed broadcast is logged and the next tick tries again. Each run gets
// its own timeout so a stuck store cannot pile up runs.
package jobs
