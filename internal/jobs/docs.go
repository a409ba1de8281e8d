// Package jobs provides scheduled background tasks for the settlement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for escrow settlement.
//
// # Available Jobs
//
// 1. SettlementFinalizationJob - Runs every minute to settle delivered orders
// that the supplier has not finalized manually
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(orderUoWFactory, settleHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The finalization job uses the "@every 1m" schedule. Minute granularity is
// enough because settlement is pure bookkeeping and the payout has already
// happened on delivery confirmation.
//
// # Error Handling
//
// - Invalid transition and concurrent update errors are ignored: they mean
// a supplier settled the order while the job was running
// - All other errors are logged as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
