// Package jobs provides scheduled background tasks for the Lytefood client
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic work the service needs.
//
// # Available Jobs
//
// 1. CourierBoardJob - Runs every 30 seconds to rebuild the courier board
// from the order service (ready and en-route orders)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshBoardHandler, serviceToken, logger)
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
// The board job uses the cron expression "*/30 * * * * *", firing every 30
// seconds. Each tick is fire-and-forget: a failed refresh leaves the cached
// board untouched and the next tick tries again. Overlapping refreshes are
// tolerated because the cache is last-write-wins.
//
// # Error Handling
//
// Refresh failures are logged and swallowed; the dashboard keeps serving the
// previous board until a refresh succeeds.
package jobs
