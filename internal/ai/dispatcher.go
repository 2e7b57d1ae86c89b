package ai

import (
	"context"
	"log"
	"strings"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultBackoffUnit = 2000 * time.Millisecond
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Dispatcher sends prompts to a Generator and absorbs transient overload
// with a bounded, linearly growing backoff. It holds no per-call state.
type Dispatcher struct {
	gen         Generator
	history     []Turn
	maxAttempts int
	backoffUnit time.Duration
	sleep       SleepFunc
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithSleep replaces the wait between attempts. Tests use it to record delays.
func WithSleep(fn SleepFunc) Option {
	return func(d *Dispatcher) { d.sleep = fn }
}

// WithBackoffUnit sets the base delay multiplied by the attempt number.
// Negative values keep the default.
func WithBackoffUnit(unit time.Duration) Option {
	return func(d *Dispatcher) {
		if unit >= 0 {
			d.backoffUnit = unit
		}
	}
}

// NewDispatcher creates a Dispatcher. history seeds every backend session;
// it is copied so later changes by the caller have no effect.
func NewDispatcher(gen Generator, history []Turn, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		gen:         gen,
		history:     append([]Turn(nil), history...),
		maxAttempts: DefaultMaxAttempts,
		backoffUnit: DefaultBackoffUnit,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send delivers prompt, retrying only on overload. Attempt n that fails with
// overload is followed by a wait of backoffUnit*n, except after the last one.
func (d *Dispatcher) Send(ctx context.Context, prompt string) DispatchResult {
	if strings.TrimSpace(prompt) == "" {
		return failure(FailureOther, 0)
	}

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		text, err := d.gen.Generate(ctx, d.history, prompt)
		if err == nil {
			return DispatchResult{OK: true, Text: text, Attempts: attempt}
		}
		if !IsOverloaded(err) {
			log.Printf("dispatch: attempt=%d terminal error: %v", attempt, err)
			return failure(FailureOther, attempt)
		}

		log.Printf("dispatch: attempt=%d/%d backend overloaded: %v", attempt, d.maxAttempts, err)
		if attempt == d.maxAttempts {
			break
		}
		if err := d.sleep(ctx, d.backoffUnit*time.Duration(attempt)); err != nil {
			log.Printf("dispatch: backoff interrupted: %v", err)
			return failure(FailureOther, attempt)
		}
	}
	return failure(FailureOverloaded, d.maxAttempts)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
