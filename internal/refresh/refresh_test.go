package refresh

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoller_Ticks(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(10*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	})

	p.Start(context.Background())
	assert.True(t, p.Running())

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	p.Stop()
	assert.False(t, p.Running())
	n := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, calls.Load())
}

// Restarting must first cancel the live timer so a view never runs two
// refresh loops at once.
func TestPoller_StartIsIdempotent(t *testing.T) {
	var active atomic.Int32
	var maxSeen atomic.Int32
	p := NewPoller(5*time.Millisecond, func(ctx context.Context) {
		cur := active.Add(1)
		if cur > maxSeen.Load() {
			maxSeen.Store(cur)
		}
		time.Sleep(2 * time.Millisecond)
		active.Add(-1)
	})

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		p.Start(ctx)
	}
	time.Sleep(60 * time.Millisecond)
	p.Stop()

	assert.LessOrEqual(t, maxSeen.Load(), int32(1))
}

func TestPoller_StopWithoutStart(t *testing.T) {
	p := NewPoller(time.Minute, func(ctx context.Context) {})
	p.Stop()
	p.Stop()
	assert.False(t, p.Running())
}

func TestPoller_StopsOnParentContext(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(5*time.Millisecond, func(ctx context.Context) { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	n := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, calls.Load())
}
