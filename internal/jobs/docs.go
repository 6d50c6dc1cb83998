// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderExportJob - Writes the full order list to a dated CSV file in
// the configured export directory on a configurable schedule, nightly by
// default.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(exportHandler, exportDir, "0 2 * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Export failures are logged and retried on the next scheduled run; a
// failed run never leaves a partial file behind because the CSV is
// renamed into place only after a complete write.
package jobs
