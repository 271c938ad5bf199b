package jobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultCacheSweepSchedule runs the sweep every 30 seconds.
const DefaultCacheSweepSchedule = "*/30 * * * * *"

// Sweeper drops expired cache entries and reports how many were removed.
type Sweeper interface {
	Sweep() int
	Len() int
}

// CacheSweepJob periodically removes expired ledger views so the cache does
// not hold stale entries between reads.
type CacheSweepJob struct {
	sweeper  Sweeper
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewCacheSweepJob creates a sweep job. An empty schedule falls back to
// DefaultCacheSweepSchedule. Schedules use the six-field cron format with
// seconds.
func NewCacheSweepJob(sweeper Sweeper, schedule string, logger *zap.Logger) *CacheSweepJob {
	if schedule == "" {
		schedule = DefaultCacheSweepSchedule
	}
	return &CacheSweepJob{
		sweeper:  sweeper,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "cache_sweep_job")),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *CacheSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Cache sweep job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one sweep.
func (j *CacheSweepJob) Run() {
	removed := j.sweeper.Sweep()
	if removed > 0 {
		j.logger.Debug("Expired ledger views removed",
			zap.Int("removed", removed),
			zap.Int("remaining", j.sweeper.Len()),
		)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *CacheSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Cache sweep job stopped")
}
