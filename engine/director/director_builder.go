package director

import (
	"math"
	"time"

	"github.com/babylon-detective/island-crisis/engine/follow"
	"github.com/babylon-detective/island-crisis/engine/input"
	"github.com/babylon-detective/island-crisis/engine/spotlight"
	"github.com/babylon-detective/island-crisis/engine/transition"
	"github.com/babylon-detective/island-crisis/engine/view"
)

// DirectorOption is a functional option for configuring a Director.
type DirectorOption func(*directorImpl)

// DefaultRegistry returns the stock view offsets for the named third-person
// views: a close over-the-shoulder view and a raised tactical view.
//
// Returns:
//   - view.Registry: the default registry
func DefaultRegistry() view.Registry {
	r, err := view.NewRegistry(map[string]view.Offset{
		"shoulder": {
			Base:      [3]float32{1.2, 1.5, -3.5},
			LookAt:    [3]float32{0, 1.5, 0},
			Smoothing: 0.15,
			Fov:       float32(50 * math.Pi / 180),
		},
		"tactical": {
			Base:      [3]float32{0, 10, -6},
			LookAt:    [3]float32{0, 0, 2},
			Smoothing: 0.08,
			Fov:       float32(60 * math.Pi / 180),
		},
	})
	if err != nil {
		// The stock entries are constants; a validation failure here is a
		// programming error.
		panic(err)
	}
	return r
}

// WithInputAdapter sets the input adapter.
//
// Parameters:
//   - in: the input adapter
//
// Returns:
//   - DirectorOption: functional option to set the adapter
func WithInputAdapter(in input.Adapter) DirectorOption {
	return func(d *directorImpl) {
		d.in = in
	}
}

// WithCapturePort sets the pointer capture port (typically the window).
//
// Parameters:
//   - capture: the capture port
//
// Returns:
//   - DirectorOption: functional option to set the capture port
func WithCapturePort(capture input.CapturePort) DirectorOption {
	return func(d *directorImpl) {
		d.capture = capture
	}
}

// WithRegistry sets the view offset registry.
//
// Parameters:
//   - registry: the view offset registry
//
// Returns:
//   - DirectorOption: functional option to set the registry
func WithRegistry(registry view.Registry) DirectorOption {
	return func(d *directorImpl) {
		d.registry = registry
	}
}

// WithOrbitController sets the free-orbit follow controller.
//
// Parameters:
//   - orbit: the orbit controller
//
// Returns:
//   - DirectorOption: functional option to set the orbit controller
func WithOrbitController(orbit follow.OrbitController) DirectorOption {
	return func(d *directorImpl) {
		d.orbit = orbit
	}
}

// WithThirdPersonController sets the third-person follow controller.
//
// Parameters:
//   - third: the third-person controller
//
// Returns:
//   - DirectorOption: functional option to set the third-person controller
func WithThirdPersonController(third follow.ThirdPersonController) DirectorOption {
	return func(d *directorImpl) {
		d.third = third
	}
}

// WithTransitionEngine sets the transition engine.
//
// Parameters:
//   - engine: the transition engine
//
// Returns:
//   - DirectorOption: functional option to set the transition engine
func WithTransitionEngine(engine transition.Engine) DirectorOption {
	return func(d *directorImpl) {
		d.transitions = engine
	}
}

// WithTransitionDuration sets how long an interpolated mode switch takes.
//
// Parameters:
//   - duration: the transition duration
//
// Returns:
//   - DirectorOption: functional option to set the duration
func WithTransitionDuration(duration time.Duration) DirectorOption {
	return func(d *directorImpl) {
		d.transitionDuration = duration
	}
}

// WithSpotlightFollower sets the spotlight follower.
//
// Parameters:
//   - spot: the spotlight follower
//
// Returns:
//   - DirectorOption: functional option to set the spotlight follower
func WithSpotlightFollower(spot spotlight.Follower) DirectorOption {
	return func(d *directorImpl) {
		d.spot = spot
	}
}

// WithInitialMode sets the mode active at construction.
//
// Parameters:
//   - mode: the initial mode
//
// Returns:
//   - DirectorOption: functional option to set the initial mode
func WithInitialMode(mode Mode) DirectorOption {
	return func(d *directorImpl) {
		d.mode = mode
	}
}

// WithModeView overrides the view id a third-person mode selects.
//
// Parameters:
//   - mode: the third-person mode to remap
//   - viewID: the view id the mode selects
//
// Returns:
//   - DirectorOption: functional option to set the mode's view id
func WithModeView(mode Mode, viewID string) DirectorOption {
	return func(d *directorImpl) {
		d.viewIDs[mode] = viewID
	}
}
