package jobs

import (
	"fmt"
	"log/slog"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderExportJob *OrderExportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the export query handler and export settings as dependencies.
func NewJobManager(
	exportHandler queries.GetOrdersExportQueryHandler,
	exportDir string,
	exportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderExportJob: NewOrderExportJob(exportHandler, exportDir, exportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderExportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order export job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderExportJob.Stop()
}
