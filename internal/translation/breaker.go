package translation

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker stops calling a failing backend after a run of consecutive failures.
// While open, Translate fails immediately with gobreaker.ErrOpenState; after the
// cooldown a single trial request decides whether to close it again.
type Breaker struct {
	next Client
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker wraps next in a circuit breaker. onChange may be nil.
func NewBreaker(next Client, threshold uint32, cooldown time.Duration, onChange func(name, from, to string)) *Breaker {
	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// Cancellation is the operator stopping the run, not the backend failing
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	if onChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			onChange(name, from.String(), to.String())
		}
	}

	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

// Translate calls the wrapped client unless the breaker is open
func (b *Breaker) Translate(ctx context.Context, content, language string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, content, language)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped backend name
func (b *Breaker) Name() string {
	return b.next.Name()
}

// State returns the current breaker state as text
func (b *Breaker) State() string {
	return b.cb.State().String()
}
