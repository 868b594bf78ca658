// Package jobs provides scheduled background tasks for the restaurant system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order lifecycle management.
//
// # Available Jobs
//
// 1. PendingOrderExpiryJob - Runs every minute to cancel pending orders that
// were never confirmed within the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderUoWFactory, changeStatusHandler, orderTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job cancels orders through the regular status-change command, so
// an order confirmed between the sweep's read and its write loses the race
// cleanly: the conflict is logged and the order is left alone.
package jobs
