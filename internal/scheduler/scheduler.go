package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	CompleteFinished(ctx context.Context) (int, error)
	CancelStalePending(ctx context.Context) (int, error)
}

// Scheduler periodically completes finished stays and expires pending
// requests whose check-in date has passed.
type Scheduler struct {
	bookingService bookingSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.LogAttrs(ctx, logger.InfoLevel, "scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.bookingService.CompleteFinished(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to complete finished bookings",
			logger.String("error", err.Error()),
		)
	} else if completed > 0 {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "bookings completed", logger.Int("count", completed))
	}

	expired, err := s.bookingService.CancelStalePending(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to expire pending bookings",
			logger.String("error", err.Error()),
		)
		return
	}
	if expired > 0 {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "pending bookings expired", logger.Int("count", expired))
	}
}
