package engine

import (
	"time"

	"github.com/babylon-detective/island-crisis/engine/director"
	"github.com/babylon-detective/island-crisis/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the update tick rate in ticks per second.
// The director and the tick callback are advanced at this rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - tps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(tps float64) EngineBuilderOption {
	return func(e *engine) {
		if tps <= 0 {
			tps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / tps)
	}
}

// WithWindow sets a pre-configured window for the engine to use rather than
// allowing the engine to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithDirector sets a pre-configured camera director. When omitted the
// engine constructs a default director bound to the window's capture port.
//
// Parameters:
//   - d: a pre-configured Director instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDirector(d director.Director) EngineBuilderOption {
	return func(e *engine) {
		e.director = d
	}
}
