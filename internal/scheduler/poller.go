package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/edustream/backend/internal/models"
)

// PublishProcessor publishes every lesson whose scheduled time has passed
type PublishProcessor interface {
	// ProcessDue publishes all due scheduled lessons and reports run stats
	ProcessDue(ctx context.Context) (models.PublishRunStats, error)
}

// Poller runs the publish processor on a fixed interval. Every tick is
// independent and idempotent, so overlapping replicas at most duplicate
// no-op work.
type Poller struct {
	processor PublishProcessor
	interval  time.Duration
	logger    *zap.Logger
}

// NewPoller creates a poller with the given tick interval
func NewPoller(processor PublishProcessor, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		processor: processor,
		interval:  interval,
		logger:    logger,
	}
}

// Run ticks immediately and then on every interval until the context is
// cancelled. A tick in flight when cancellation arrives finishes its
// per-lesson work before Run returns.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("scheduler started", zap.Duration("interval", p.interval))

	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	start := time.Now()
	stats, err := p.processor.ProcessDue(ctx)
	if err != nil {
		p.logger.Error("publish run failed", zap.Error(err))
		return
	}

	if stats.Processed == 0 {
		p.logger.Debug("no lessons due")
		return
	}

	p.logger.Info("publish run finished",
		zap.Int("processed", stats.Processed),
		zap.Int("succeeded", stats.Succeeded),
		zap.Int("skipped", stats.Skipped),
		zap.Int("failed", stats.Failed),
		zap.Duration("duration", time.Since(start)),
	)
}
