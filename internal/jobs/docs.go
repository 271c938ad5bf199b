// Package jobs provides scheduled background tasks for the packing service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3 with the six-field
// (seconds) format.
//
// # Available Jobs
//
// 1. CacheSweepJob - Removes expired entries from the ledger view cache, by
// default every 30 seconds
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(ledgerCache, cfg.CacheSweepSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("Failed to start jobs", zap.Error(err))
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An invalid schedule fails StartAll. Sweeps themselves cannot fail; the
// cache stays correct without them because reads drop expired entries too.
package jobs
