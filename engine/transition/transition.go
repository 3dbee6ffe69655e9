package transition

import (
	"errors"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/babylon-detective/island-crisis/common"
	"github.com/babylon-detective/island-crisis/engine/camera"
)

// ErrInFlight is returned by Start when a transition is already running.
// Transitions are non-interruptible: a second request while one is in flight
// is rejected rather than queued.
var ErrInFlight = errors.New("transition: already in flight")

// state holds one in-flight pose interpolation. It exists only while the
// transition runs and is discarded exactly once on completion.
type state struct {
	from     camera.Pose
	to       camera.Pose
	start    time.Time
	duration time.Duration
}

// Engine interpolates camera position, orientation, and field of view
// between two poses over a fixed wall-clock duration, with a cubic ease-out
// curve. Orientation is interpolated spherically via quaternions; raw Euler
// angles are never interpolated, which would jump near ±π.
type Engine interface {
	// Start begins a transition from one pose to another.
	//
	// Parameters:
	//   - from: the outgoing pose
	//   - to: the destination pose
	//   - duration: total transition time in wall-clock terms
	//
	// Returns:
	//   - error: ErrInFlight if a transition is already running
	Start(from, to camera.Pose, duration time.Duration) error

	// Active reports whether a transition is currently in flight.
	//
	// Returns:
	//   - bool: true while a transition runs
	Active() bool

	// Step samples the in-flight transition at the current wall-clock time.
	// Progress is monotonically non-decreasing in [0, 1]; when it reaches 1
	// the destination pose is returned, done is true exactly once, and the
	// transition is discarded. With no transition in flight, Step returns
	// the zero pose and done=false.
	//
	// Returns:
	//   - camera.Pose: the interpolated pose
	//   - bool: true on the completing step
	Step() (camera.Pose, bool)
}

type engineImpl struct {
	mu  *sync.Mutex
	st  *state
	now func() time.Time
}

var _ Engine = &engineImpl{}

// NewEngine creates a transition Engine.
//
// Parameters:
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineOption) Engine {
	e := &engineImpl{
		mu:  &sync.Mutex{},
		now: time.Now,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *engineImpl) Start(from, to camera.Pose, duration time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.st != nil {
		return ErrInFlight
	}
	e.st = &state{
		from:     from,
		to:       to,
		start:    e.now(),
		duration: duration,
	}
	return nil
}

func (e *engineImpl) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st != nil
}

func (e *engineImpl) Step() (camera.Pose, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.st == nil {
		return camera.Pose{}, false
	}

	st := e.st
	progress := float32(1)
	if st.duration > 0 {
		elapsed := e.now().Sub(st.start)
		progress = common.Clamp(float32(elapsed.Seconds()/st.duration.Seconds()), 0, 1)
	}

	if progress >= 1 {
		e.st = nil
		return st.to, true
	}
	return interpolate(st.from, st.to, common.EaseOutCubic(progress)), false
}

// interpolate blends two poses at the given eased factor: linear position,
// spherical orientation, linear field of view. The destination's projection
// kind applies throughout.
func interpolate(from, to camera.Pose, t float32) camera.Pose {
	fromQ := from.Orientation
	toQ := to.Orientation
	// Slerp along the shorter arc: q and -q encode the same rotation, so a
	// negative dot means the raw pair would take the long way around.
	if fromQ.Dot(toQ) < 0 {
		toQ = toQ.Scale(-1)
	}

	return camera.Pose{
		Position: mgl32.Vec3{
			common.Lerp(from.Position.X(), to.Position.X(), t),
			common.Lerp(from.Position.Y(), to.Position.Y(), t),
			common.Lerp(from.Position.Z(), to.Position.Z(), t),
		},
		Orientation: mgl32.QuatSlerp(fromQ, toQ, t),
		Fov:         common.Lerp(from.Fov, to.Fov, t),
		Projection:  to.Projection,
	}
}
