package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TimeoutProvider bounds each call to the wrapped provider. It sits inside
// the retry layer, so every attempt gets a fresh budget.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithAttemptTimeout wraps p so that a single call may take at most d.
// A non-positive d returns p unchanged.
func WithAttemptTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: d}
}

// Generate reports an attempt that ran out of time as
// ErrProviderUnavailable so the retry layer tries again. When the caller's
// own context ended, its error is returned as is.
func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	actx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.inner.Generate(actx, req)
	if err != nil && ctx.Err() == nil && errors.Is(actx.Err(), context.DeadlineExceeded) {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("attempt timed out after %s", t.timeout)}
	}
	return resp, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
