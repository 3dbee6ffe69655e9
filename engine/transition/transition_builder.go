package transition

import "time"

// EngineOption is a functional option for configuring a transition Engine.
type EngineOption func(*engineImpl)

// WithClock sets the wall-clock source used to measure elapsed time.
// Defaults to time.Now; tests substitute a deterministic clock.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - EngineOption: functional option to set the clock
func WithClock(now func() time.Time) EngineOption {
	return func(e *engineImpl) {
		e.now = now
	}
}
