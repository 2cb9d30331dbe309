package refresh

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultInterval matches the 30-second auto-refresh both dashboards use.
const DefaultInterval = 30 * time.Second

// Poller runs a silent periodic refresh while a view is active. Start is
// idempotent: it cancels any live timer first, so a view instance never has
// two concurrent refresh loops. Stop is safe to call when not running.
type Poller struct {
	interval time.Duration
	fn       func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(interval time.Duration, fn func(ctx context.Context)) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{interval: interval, fn: fn}
}

func (p *Poller) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.fn(ctx)
			}
		}
	}()
	log.Printf("[REFRESH] auto-refresh started (every %s)", p.interval)
}

func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Printf("[REFRESH] auto-refresh stopped")
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}
