// Package throttle paces calls to the external translation API. A Gate is
// asked before every call and told when the call has finished, which keeps
// pacing separate from the orchestration loop.
package throttle

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Gate decides when the next API call may start
type Gate interface {
	// Wait blocks until a call may start or ctx is done
	Wait(ctx context.Context) error
	// Done records that a call has finished, successfully or not
	Done()
}

// Interval enforces a fixed pause between the end of one call and the start of the next
type Interval struct {
	mu    sync.Mutex
	delay time.Duration
	last  time.Time
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewInterval creates an interval gate; a zero delay never blocks
func NewInterval(delay time.Duration) *Interval {
	return &Interval{delay: delay, now: time.Now, sleep: sleepContext}
}

// Wait sleeps for whatever remains of the delay since the last Done
func (g *Interval) Wait(ctx context.Context) error {
	g.mu.Lock()
	last := g.last
	g.mu.Unlock()

	if g.delay <= 0 || last.IsZero() {
		return ctx.Err()
	}
	remaining := g.delay - g.now().Sub(last)
	if remaining <= 0 {
		return ctx.Err()
	}
	return g.sleep(ctx, remaining)
}

// Done marks the end of a call
func (g *Interval) Done() {
	g.mu.Lock()
	g.last = g.now()
	g.mu.Unlock()
}

// Bucket allows at most rpm call starts per minute with a burst of one
type Bucket struct {
	limiter *rate.Limiter
}

// NewBucket creates a token bucket gate for rpm requests per minute
func NewBucket(rpm int) *Bucket {
	return &Bucket{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)}
}

// Wait blocks until a token is available
func (b *Bucket) Wait(ctx context.Context) error {
	return b.limiter.Wait(ctx)
}

// Done is a no-op for the bucket
func (b *Bucket) Done() {}

// Chain combines gates; a call may start once every gate allows it
type Chain []Gate

// Wait waits on each gate in order
func (c Chain) Wait(ctx context.Context) error {
	for _, g := range c {
		if err := g.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Done notifies every gate
func (c Chain) Done() {
	for _, g := range c {
		g.Done()
	}
}

// New builds the gate for a fixed delay and an optional requests-per-minute cap
func New(delay time.Duration, rpm int) Gate {
	gates := Chain{NewInterval(delay)}
	if rpm > 0 {
		gates = append(gates, NewBucket(rpm))
	}
	if len(gates) == 1 {
		return gates[0]
	}
	return gates
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
