package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"packtrack/internal/adapters/out/labels"
)

// LabelRefreshJob re-renders every cached label on a schedule so printed
// QR codes and PDFs follow the live allocation state.
type LabelRefreshJob struct {
	cache    *labels.Cache
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLabelRefreshJob creates the label refresh job. The schedule is a
// six-field cron expression with seconds, e.g. "*/30 * * * * *".
func NewLabelRefreshJob(cache *labels.Cache, schedule string, logger *slog.Logger) *LabelRefreshJob {
	return &LabelRefreshJob{
		cache:    cache,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "label_refresh_job"),
	}
}

// Start begins the scheduled refresh.
func (j *LabelRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.cache.Refresh()
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Label refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled refresh.
func (j *LabelRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Label refresh job stopped")
}
