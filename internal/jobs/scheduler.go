package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled directory task.
type Job interface {
	// Name returns a unique job name for logging.
	Name() string

	// Schedule returns the cron schedule string (e.g. "@every 1h").
	Schedule() string

	// Run executes the task.
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs on their cron cadence. A job that is
// still running when its next tick arrives is skipped rather than
// stacked, so a slow refresh never overlaps itself.
type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)

	_, err := s.cron.AddFunc(job.Schedule(), func() {
		log.Printf("[%s] Starting scheduled job...", job.Name())
		if err := job.Run(context.Background()); err != nil {
			log.Printf("[%s] Job failed: %v", job.Name(), err)
		} else {
			log.Printf("[%s] Job completed", job.Name())
		}
	})
	if err != nil {
		log.Printf("Failed to schedule job %s: %v", job.Name(), err)
		return
	}

	log.Printf("[%s] Scheduled with cron: %s", job.Name(), job.Schedule())
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("Scheduler started with %d registered jobs", len(s.jobs))
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Scheduler stopped")
}
