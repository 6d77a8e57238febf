package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/pokeradvisor/advisor"
)

// ErrTimeout is returned when a wrapped equity function misses its deadline.
var ErrTimeout = errors.New("equity timed out")

type equityOutcome struct {
	equity float64
	err    error
}

// WithTimeout bounds fn by d on clock. On timeout the context handed to fn is
// cancelled and the call returns ErrTimeout, so the engine falls back to
// neutral equity. A non-positive d only drops the context.
func WithTimeout(fn ContextEquityFunc, d time.Duration, clock quartz.Clock) advisor.EquityFunc {
	if fn == nil {
		return nil
	}
	if d <= 0 {
		return func(hole, board []string, opponents int) (float64, error) {
			return fn(context.Background(), hole, board, opponents)
		}
	}
	if clock == nil {
		clock = quartz.NewReal()
	}

	return func(hole, board []string, opponents int) (float64, error) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan equityOutcome, 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					done <- equityOutcome{err: errors.New("equity function panicked")}
				}
			}()
			equity, err := fn(ctx, hole, board, opponents)
			done <- equityOutcome{equity: equity, err: err}
		}()

		timeoutFired := make(chan struct{})
		timer := clock.AfterFunc(d, func() {
			cancel()
			close(timeoutFired)
		})
		defer timer.Stop()

		select {
		case out := <-done:
			return out.equity, out.err
		case <-timeoutFired:
			return 0, ErrTimeout
		}
	}
}
