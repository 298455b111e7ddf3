package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/VSP7988/maranatha-api/pkg/logger"
)

// JobScheduler runs the recurring maintenance jobs, currently the
// nightly storage audit.
type JobScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	RemoveJob(id string) error
	ListJobs() map[string]*JobInfo
	IsRunning() bool
}

type JobInfo struct {
	ID       string
	CronExpr string
	LastRun  *time.Time
	NextRun  *time.Time
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*JobInfo
	tagged    map[string]*gocron.Job
	mu        sync.RWMutex
	running   bool
}

func NewJobScheduler() JobScheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &GocronScheduler{
		scheduler: s,
		jobs:      make(map[string]*JobInfo),
		tagged:    make(map[string]*gocron.Job),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Job scheduler started", "jobs", len(s.jobs))
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.scheduler.Stop()
	s.running = false
	logger.Info("Job scheduler stopped")
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job %s already registered", id)
	}

	job, err := s.scheduler.Cron(cronExpr).Do(func() {
		now := time.Now()
		logger.Info("Running scheduled job", "job", id)

		s.mu.Lock()
		if info, ok := s.jobs[id]; ok {
			info.LastRun = &now
			if j, ok := s.tagged[id]; ok {
				next := j.NextRun()
				info.NextRun = &next
			}
		}
		s.mu.Unlock()

		task()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", id, err)
	}

	s.tagged[id] = job
	s.jobs[id] = &JobInfo{ID: id, CronExpr: cronExpr}
	return nil
}

func (s *GocronScheduler) RemoveJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.tagged[id]
	if !exists {
		return fmt.Errorf("job %s not found", id)
	}
	s.scheduler.RemoveByReference(job)
	delete(s.tagged, id)
	delete(s.jobs, id)
	return nil
}

func (s *GocronScheduler) ListJobs() map[string]*JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*JobInfo, len(s.jobs))
	for id, info := range s.jobs {
		copied := *info
		out[id] = &copied
	}
	return out
}
