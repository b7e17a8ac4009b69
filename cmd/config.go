package cmd

// Config carries the process configuration, filled from the environment.
type Config struct {
	HTTPPort string

	// TestMode relaxes the loading and delivery stage gates so a floor
	// walkthrough can be exercised without a fully packed order.
	TestMode bool

	// SnapshotPath points to a JSON seed file. Empty means the built-in
	// demo snapshot.
	SnapshotPath string

	// LabelRefreshSchedule is a six-field cron expression for the label
	// refresh job.
	LabelRefreshSchedule string
}
