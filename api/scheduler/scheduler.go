package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bigwigdigital/kpd-realty-api/otp"
)

// Scheduler runs periodic background jobs. Right now that is only the eviction
// of expired OTP challenges, which would otherwise sit in memory until the
// same email requested a new code.
type Scheduler struct {
	cron       *cron.Cron
	Challenges otp.Store
}

// NewScheduler creates a new scheduler instance
func NewScheduler(challenges otp.Store) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		Challenges: challenges,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Sweep expired OTP challenges every minute
	_, err := s.cron.AddFunc("* * * * *", s.sweepChallenges)
	if err != nil {
		zap.S().Errorw("failed to register challenge sweep job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("challenge sweep scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("challenge sweep scheduler stopped")
}

func (s *Scheduler) sweepChallenges() {
	removed := s.Challenges.Sweep()
	if removed > 0 {
		zap.S().Infow("evicted expired OTP challenges", "count", removed)
	}
}
