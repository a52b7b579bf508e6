package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic background jobs: the daily interaction report
// and the idle-session sweep.
type Scheduler struct {
	cron       *cron.Cron
	ctx        context.Context
	cancel     context.CancelFunc
	reportFunc func(ctx context.Context) error
	sweepFunc  func() int
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) SetReportFunction(f func(ctx context.Context) error) {
	s.reportFunc = f
}

func (s *Scheduler) SetSweepFunction(f func() int) {
	s.sweepFunc = f
}

func (s *Scheduler) Start() error {
	if s.reportFunc != nil {
		// Daily at 21:00 UTC
		if _, err := s.cron.AddFunc("0 21 * * *", func() {
			log.Println("🕘 Triggered daily interaction report at 21:00 UTC")
			if err := s.reportFunc(s.ctx); err != nil {
				log.Printf("❌ Daily report generation failed: %v", err)
			}
		}); err != nil {
			return err
		}
	}

	if s.sweepFunc != nil {
		// Every 15 minutes
		if _, err := s.cron.AddFunc("*/15 * * * *", func() {
			if removed := s.sweepFunc(); removed > 0 {
				log.Printf("🧹 Idle sweep removed %d session(s)", removed)
			}
		}); err != nil {
			return err
		}
	}

	if s.reportFunc == nil && s.sweepFunc == nil {
		log.Println("⚠️ No jobs configured, scheduler will not start anything")
		return nil
	}

	s.cron.Start()
	log.Println("📅 Scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("📅 Scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
