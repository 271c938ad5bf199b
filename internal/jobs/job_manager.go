package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager starts and stops the background jobs of the packing service
// as one unit.
type JobManager struct {
	cacheSweepJob *CacheSweepJob
}

func NewJobManager(sweeper Sweeper, sweepSchedule string, logger *zap.Logger) *JobManager {
	return &JobManager{
		cacheSweepJob: NewCacheSweepJob(sweeper, sweepSchedule, logger),
	}
}

// StartAll schedules every job. Nothing is left running when it fails.
func (jm *JobManager) StartAll() error {
	if err := jm.cacheSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start cache sweep job: %w", err)
	}
	return nil
}

// StopAll stops every job and waits for running executions.
func (jm *JobManager) StopAll() {
	jm.cacheSweepJob.Stop()
}
