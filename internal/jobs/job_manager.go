package jobs

import (
	"fmt"
	"log/slog"
)

type scheduledJob interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts and stops the background jobs as one unit.
type JobManager struct {
	jobs    []scheduledJob
	started []scheduledJob
}

// NewJobManager wires the statistics broadcast. statisticsSchedule may be
// empty to use DefaultStatisticsSchedule.
func NewJobManager(publisher StatisticsPublisher, statisticsSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		jobs: []scheduledJob{
			NewStatisticsBroadcastJob(publisher, statisticsSchedule, logger),
		},
	}
}

// StartAll starts the jobs in order. If one fails, the ones already running
// are stopped again.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops running jobs in reverse start order and waits for in-flight
// runs to finish.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
