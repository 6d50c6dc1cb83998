package jobs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/queries"
	"github.com/Amman-Khan-17/Paperless-profits/internal/export"

	"github.com/robfig/cron/v3"
)

// OrderExportJob writes the full order list to a dated CSV file on a
// schedule, typically nightly. Each run produces (or overwrites) the file
// for the current date in the configured export directory.
type OrderExportJob struct {
	handler  queries.GetOrdersExportQueryHandler
	dir      string
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderExportJob creates a job that exports orders to dir on the given
// cron schedule (standard five-field expression).
func NewOrderExportJob(
	handler queries.GetOrdersExportQueryHandler,
	dir string,
	schedule string,
	logger *slog.Logger,
) *OrderExportJob {
	return &OrderExportJob{
		handler:  handler,
		dir:      dir,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "order_export_job"),
	}
}

// Start begins the export job on its schedule.
func (j *OrderExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order export job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order export job started",
		"schedule", j.schedule, "dir", j.dir)
	return nil
}

// Run executes a single export immediately, outside the schedule.
// The file is written atomically: rendered to a temp file first, then
// renamed, so a reader never sees a half-written export.
func (j *OrderExportJob) Run(ctx context.Context) error {
	rows, err := j.handler.Handle(ctx, queries.NewGetOrdersExportQuery())
	if err != nil {
		return err
	}

	if err = os.MkdirAll(j.dir, 0o755); err != nil {
		return err
	}

	target := filepath.Join(j.dir, export.Filename(time.Now()))
	tmp, err := os.CreateTemp(j.dir, "orders_export_*.tmp")
	if err != nil {
		return err
	}

	if err = export.OrdersCSV(tmp, rows); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	j.logger.InfoContext(ctx, "Order export written", "file", target, "rows", len(rows))
	return nil
}

// Stop stops the export job.
func (j *OrderExportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order export job stopped")
}
