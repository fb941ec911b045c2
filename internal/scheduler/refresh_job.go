package scheduler

import (
	"fmt"

	"github.com/aristath/retailmind/internal/insights"
)

// SnapshotRefreshJob recomputes the insights snapshot from the held dataset
// so dashboard reads stay warm between uploads.
type SnapshotRefreshJob struct {
	state    *insights.StateManager
	analyzer *insights.Analyzer
}

// NewSnapshotRefreshJob creates the periodic re-analysis job.
func NewSnapshotRefreshJob(state *insights.StateManager, analyzer *insights.Analyzer) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{state: state, analyzer: analyzer}
}

// Name implements Job.
func (j *SnapshotRefreshJob) Name() string {
	return "snapshot_refresh"
}

// Run recomputes and caches a snapshot. A missing dataset is not an error;
// the job simply waits for the first upload.
func (j *SnapshotRefreshJob) Run() error {
	if !j.state.HasData() {
		return nil
	}

	histories := j.state.Histories()
	if len(histories) == 0 {
		return fmt.Errorf("snapshot refresh: dataset vanished between checks")
	}

	j.state.SetSnapshot(j.analyzer.Analyze(histories))
	return nil
}
