// Package scheduler fires the recurring weekly report job.
package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// DefaultCronSpec fires every Monday at 9 AM.
const DefaultCronSpec = "0 9 * * 1"

// Job is the work executed on every tick. Job errors are logged and
// swallowed, never retried.
type Job func() error

// Scheduler wraps a cron timer around a single job.
type Scheduler struct {
	cron *cron.Cron
	job  Job
}

// New creates a scheduler for the given cron spec. An empty spec falls
// back to the default weekly schedule.
func New(spec string, job Job) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultCronSpec
	}

	s := &Scheduler{
		cron: cron.New(),
		job:  job,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins firing the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule. A job already in flight finishes.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) run() {
	log.Info().Msg("running scheduled weekly report")

	if err := s.job(); err != nil {
		log.Error().Err(err).Msg("scheduled weekly report failed")
		return
	}

	log.Info().Msg("scheduled weekly report sent")
}
