// Package jobs provides scheduled background tasks for the packaging panel.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LabelRefreshJob - Re-renders every cached label so QR codes and PDFs
// track the live allocation state.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(labelCache, cfg.LabelRefreshSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh schedule is a six-field cron expression with a seconds field,
// taken from configuration. The default of every thirty seconds keeps labels
// close to live without re-rendering on every allocation click.
package jobs
