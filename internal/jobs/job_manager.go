package jobs

import (
	"fmt"
	"log/slog"

	"packtrack/internal/adapters/out/labels"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	labelRefreshJob *LabelRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(cache *labels.Cache, labelRefreshSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		labelRefreshJob: NewLabelRefreshJob(cache, labelRefreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.labelRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start label refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.labelRefreshJob.Stop()
}
