package director

import (
	"log"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/babylon-detective/island-crisis/engine/camera"
	"github.com/babylon-detective/island-crisis/engine/follow"
	"github.com/babylon-detective/island-crisis/engine/input"
	"github.com/babylon-detective/island-crisis/engine/spotlight"
	"github.com/babylon-detective/island-crisis/engine/transition"
	"github.com/babylon-detective/island-crisis/engine/view"
)

// SubjectVisual is the visibility hook for the subject's own rendered
// representation, owned by the external scene.
type SubjectVisual interface {
	// SetVisible shows or hides the subject's visual.
	//
	// Parameters:
	//   - visible: true to show
	SetVisible(visible bool)
}

// Director is the top-level camera coordinator: it owns the active viewing
// mode, dispatches per-frame updates to the follow controller owning that
// mode, arbitrates mode switches through the transition engine, and keeps
// the spotlight follower fed from the same subject position.
//
// All state mutation happens synchronously inside Update or the exposed
// calls; input event handlers only stage deltas into the adapter's
// accumulators, drained deterministically on the next Update.
type Director interface {
	// SwitchMode requests a change of viewing mode. Requests are rejected as
	// silent no-ops when the requested mode is already active or a transition
	// is in flight. With immediate=true the pose snaps synchronously and the
	// new mode's input/capture/light disposition applies at once; otherwise a
	// timed transition interpolates from the outgoing camera's pose to the
	// incoming controller's settled pose, and the mode is pending until it
	// completes.
	//
	// Parameters:
	//   - mode: the requested viewing mode
	//   - immediate: true to snap without interpolation
	SwitchMode(mode Mode, immediate bool)

	// Update is the single per-frame entry point. It advances any in-flight
	// transition, otherwise advances the active follow controller, then
	// refreshes the spotlight from the same subject position.
	//
	// Parameters:
	//   - dt: elapsed frame time in seconds
	Update(dt float32)

	// Mode returns the active mode. During a transition this remains the
	// outgoing mode until the transition lands.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// ActiveCamera returns the currently authoritative camera: the active
	// mode's camera, or the destination camera while a transition is in
	// flight.
	//
	// Returns:
	//   - camera.Camera: the authoritative camera
	ActiveCamera() camera.Camera

	// ActivePose returns the currently authoritative pose.
	//
	// Returns:
	//   - camera.Pose: the authoritative pose
	ActivePose() camera.Pose

	// SetSubjectPosition updates the tracked subject's world position.
	// The director retains the previous frame's position itself; the external
	// driver only supplies the current one.
	//
	// Parameters:
	//   - x, y, z: world-space subject position
	SetSubjectPosition(x, y, z float32)

	// RegisterSubjectVisual installs the visibility hook for the subject's
	// rendered representation.
	//
	// Parameters:
	//   - v: the visual hook (nil to clear)
	RegisterSubjectVisual(v SubjectVisual)

	// UpdateViewOffset applies a partial runtime tuning patch to a named view.
	//
	// Parameters:
	//   - id: the view identifier
	//   - patch: fields to overwrite
	//
	// Returns:
	//   - bool: true if the patch was applied
	UpdateViewOffset(id string, patch view.Patch) bool

	// ViewOffset returns the configuration of a named view.
	//
	// Parameters:
	//   - id: the view identifier
	//
	// Returns:
	//   - view.Offset: the configured offset
	//   - bool: true if the id is configured
	ViewOffset(id string) (view.Offset, bool)

	// Zoom adjusts the orbit radius. Ignored outside free-orbit mode.
	//
	// Parameters:
	//   - delta: zoom amount (positive zooms in)
	Zoom(delta float32)

	// HandleResize updates every camera's aspect ratio for the new viewport.
	// Synchronous, idempotent, and safe mid-transition.
	//
	// Parameters:
	//   - width, height: viewport dimensions in pixels
	HandleResize(width, height int)

	// Input returns the input adapter feeding the follow controllers.
	//
	// Returns:
	//   - input.Adapter: the input adapter
	Input() input.Adapter

	// Spotlight returns the spotlight follower.
	//
	// Returns:
	//   - spotlight.Follower: the spotlight follower
	Spotlight() spotlight.Follower

	// Dispose releases pointer capture and stops accepting input.
	// Idempotent; subsequent calls are no-ops, as are later Updates.
	Dispose()
}

type directorImpl struct {
	mu *sync.Mutex

	in      input.Adapter
	capture input.CapturePort

	registry view.Registry
	orbit    follow.OrbitController
	third    follow.ThirdPersonController

	transitions        transition.Engine
	transitionDuration time.Duration

	spot spotlight.Follower

	mode        Mode
	pendingMode Mode
	viewIDs     map[Mode]string

	subjectPos  mgl32.Vec3
	prevSubject mgl32.Vec3
	hasSubject  bool

	visual   SubjectVisual
	disposed bool
}

var _ Director = &directorImpl{}

// NewDirector creates a Director with defaults for every collaborator not
// supplied as an option: a fresh input adapter, the default view registry,
// orbit and third-person controllers, a wall-clock transition engine, and an
// unconsumed spotlight follower.
//
// Parameters:
//   - options: functional options to configure the director
//
// Returns:
//   - Director: the newly created director
func NewDirector(options ...DirectorOption) Director {
	d := &directorImpl{
		mu:                 &sync.Mutex{},
		transitionDuration: time.Second,
		mode:               ModeOrbit,
		viewIDs: map[Mode]string{
			ModeShoulder: "shoulder",
			ModeTactical: "tactical",
		},
	}
	for _, option := range options {
		option(d)
	}

	if d.in == nil {
		d.in = input.NewAdapter()
	}
	if d.registry == nil {
		d.registry = DefaultRegistry()
	}
	if d.orbit == nil {
		d.orbit = follow.NewOrbit()
	}
	if d.third == nil {
		d.third = follow.NewThirdPerson(d.registry, d.viewIDs[ModeShoulder])
	}
	if d.transitions == nil {
		d.transitions = transition.NewEngine()
	}
	if d.spot == nil {
		d.spot = spotlight.NewFollower(nil)
	}

	d.mu.Lock()
	d.applyModeLocked(d.mode)
	d.mu.Unlock()
	return d
}

func (d *directorImpl) SwitchMode(mode Mode, immediate bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.disposed {
		return
	}
	// A switch to the active mode, or any switch while a transition is in
	// flight, is a silent no-op rather than an error.
	if mode == d.mode || d.transitions.Active() {
		return
	}
	if mode.thirdPerson() {
		id := d.viewIDs[mode]
		if _, ok := d.registry.Get(id); !ok {
			log.Printf("director: no view offset configured for %q, keeping %s", id, d.mode)
			return
		}
	}

	if immediate {
		d.applyModeLocked(mode)
		return
	}

	subject := d.subjectLocked()
	from := d.activeCameraLocked().Pose()
	to := d.controllerFor(mode, true).SettledPose(subject)
	if err := d.transitions.Start(from, to, d.transitionDuration); err != nil {
		return
	}
	// The destination camera becomes the active one immediately, but the
	// first Step lands only on the next Update. Snap it to the departure
	// pose so ActivePose never reports a stale frame in between.
	d.controllerFor(mode, true).Camera().SetPose(from)
	d.pendingMode = mode
	// Input stays parked during the flight; the landing disposition
	// re-enables it for the destination mode.
	d.in.SetEnabled(false)
}

func (d *directorImpl) Update(dt float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.disposed {
		return
	}

	subject := d.subjectLocked()

	if d.transitions.Active() {
		pose, done := d.transitions.Step()
		d.controllerFor(d.pendingMode, true).Camera().SetPose(pose)
		if done {
			d.applyModeLocked(d.pendingMode)
		}
	} else {
		d.activeControllerLocked().Advance(subject, d.in, dt)
	}

	d.spot.Refresh(subject.Position, d.activeCameraLocked().Pose().Forward())

	d.prevSubject = d.subjectPos
}

func (d *directorImpl) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

func (d *directorImpl) ActiveCamera() camera.Camera {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activeCameraLocked()
}

func (d *directorImpl) ActivePose() camera.Pose {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activeCameraLocked().Pose()
}

func (d *directorImpl) SetSubjectPosition(x, y, z float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	pos := mgl32.Vec3{x, y, z}
	if !d.hasSubject {
		d.prevSubject = pos
		d.hasSubject = true
	}
	d.subjectPos = pos
}

func (d *directorImpl) RegisterSubjectVisual(v SubjectVisual) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visual = v
}

func (d *directorImpl) UpdateViewOffset(id string, patch view.Patch) bool {
	return d.registry.Update(id, patch)
}

func (d *directorImpl) ViewOffset(id string) (view.Offset, bool) {
	return d.registry.Get(id)
}

func (d *directorImpl) Zoom(delta float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed || d.mode != ModeOrbit || d.transitions.Active() {
		return
	}
	d.orbit.Zoom(delta)
}

func (d *directorImpl) HandleResize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if height <= 0 {
		return
	}
	aspect := float32(width) / float32(height)
	d.orbit.Camera().SetAspect(aspect)
	d.third.Camera().SetAspect(aspect)
}

func (d *directorImpl) Input() input.Adapter {
	return d.in
}

func (d *directorImpl) Spotlight() spotlight.Follower {
	return d.spot
}

func (d *directorImpl) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed {
		return
	}
	d.disposed = true
	if d.capture != nil {
		d.capture.ReleaseCapture()
	}
	d.in.SetEnabled(false)
}

// --- internal helpers ---

// subjectLocked snapshots the subject for this frame. The adapter's
// accumulated yaw doubles as the subject's facing: the subject turns with
// the look input. Caller must hold the mutex.
func (d *directorImpl) subjectLocked() follow.SubjectState {
	return follow.SubjectState{
		Position:     d.subjectPos,
		PrevPosition: d.prevSubject,
		Yaw:          d.in.Yaw(),
	}
}

// controllerFor returns the follow controller owning the given mode,
// selecting the mode's named view first when asked. Caller must hold the mutex.
func (d *directorImpl) controllerFor(mode Mode, selectView bool) follow.Controller {
	if mode.thirdPerson() {
		if selectView {
			d.third.SetView(d.viewIDs[mode])
		}
		return d.third
	}
	return d.orbit
}

// activeControllerLocked returns the controller owning the active mode.
// Caller must hold the mutex.
func (d *directorImpl) activeControllerLocked() follow.Controller {
	return d.controllerFor(d.mode, false)
}

// activeCameraLocked returns the authoritative camera: the destination
// mode's camera while a transition is in flight, otherwise the active
// mode's. Caller must hold the mutex.
func (d *directorImpl) activeCameraLocked() camera.Camera {
	if d.transitions.Active() {
		return d.controllerFor(d.pendingMode, false).Camera()
	}
	return d.activeControllerLocked().Camera()
}

// applyModeLocked lands on a mode's default disposition: the owning
// controller settles and snaps its camera, pointer capture follows the
// mode's needs, staged input is discarded so no residual velocity carries
// over, and the spotlight requirement updates. Caller must hold the mutex.
func (d *directorImpl) applyModeLocked(mode Mode) {
	d.mode = mode

	ctrl := d.controllerFor(mode, true)
	ctrl.Activate(d.subjectLocked())

	if mode.thirdPerson() {
		if d.capture != nil {
			// Capture is best-effort: the host may refuse, leaving the
			// adapter in the non-exclusive regime until the user interacts
			// again.
			if err := d.capture.RequestCapture(); err != nil {
				log.Printf("director: pointer capture denied: %v", err)
			}
		}
		if d.visual != nil {
			d.visual.SetVisible(true)
		}
	} else if d.capture != nil {
		d.capture.ReleaseCapture()
	}

	d.in.ConsumeDeltas()
	d.in.ResetPointer()
	d.in.SetEnabled(true)
	d.spot.SetRequired(mode.thirdPerson())
}
