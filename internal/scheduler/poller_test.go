package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/edustream/backend/internal/models"
)

// countingProcessor records ProcessDue invocations
type countingProcessor struct {
	mu    sync.Mutex
	calls int
	stats models.PublishRunStats
}

func (p *countingProcessor) ProcessDue(ctx context.Context) (models.PublishRunStats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.stats, nil
}

func (p *countingProcessor) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestPoller_RunsImmediatelyAndOnInterval(t *testing.T) {
	processor := &countingProcessor{stats: models.PublishRunStats{Processed: 1, Succeeded: 1}}
	poller := NewPoller(processor, 20*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	// The first pass happens before the first interval elapses
	assert.Eventually(t, func() bool { return processor.callCount() >= 1 }, 15*time.Millisecond, time.Millisecond)

	// And subsequent passes keep coming
	assert.Eventually(t, func() bool { return processor.callCount() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after context cancellation")
	}
}

func TestPoller_StopsOnCancel(t *testing.T) {
	processor := &countingProcessor{}
	poller := NewPoller(processor, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return processor.callCount() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after context cancellation")
	}
	assert.Equal(t, 1, processor.callCount())
}
