package fetcher

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs an ingestor on a cron schedule. Overlapping runs are skipped.
type Scheduler struct {
	ingestor *Ingestor
	cron     *cron.Cron
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewScheduler creates a scheduler for the given ingestor
func NewScheduler(ingestor *Ingestor) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ingestor: ingestor,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start registers the ingestor under a standard 5-field cron expression and starts the scheduler
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		if _, err := s.ingestor.Run(s.ctx); err != nil {
			zap.S().Errorf("Scheduled forecast fetch failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	zap.S().Infof("Forecast fetch scheduled: %s", spec)
	s.cron.Start()
	return nil
}

// Stop cancels a running fetch and waits for it to return
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}
