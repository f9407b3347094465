package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

type job interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  job
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started []namedJob
}

// NewJobManager creates a new job manager with the kitchen progress job.
func NewJobManager(kitchenHandler KitchenHandler, kitchenSchedule string, logger *zap.Logger) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "kitchen progress", job: NewKitchenProgressJob(kitchenHandler, kitchenSchedule, logger)},
		},
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs started before it are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops all started jobs gracefully, newest first.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}
