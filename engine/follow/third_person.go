package follow

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/babylon-detective/island-crisis/common"
	"github.com/babylon-detective/island-crisis/engine/camera"
	"github.com/babylon-detective/island-crisis/engine/input"
	"github.com/babylon-detective/island-crisis/engine/view"
)

// ThirdPersonController is a follow Controller for named over-the-shoulder
// and tactical views whose offset rotates with the subject's facing.
type ThirdPersonController interface {
	Controller

	// SetView selects the named view to follow with. An id with no matching
	// offset configuration is a no-op that leaves the previous view active.
	//
	// Parameters:
	//   - id: the view identifier
	//
	// Returns:
	//   - bool: true if the view was selected
	SetView(id string) bool

	// View returns the id of the currently selected view.
	//
	// Returns:
	//   - string: the active view id
	View() string
}

type thirdPersonImpl struct {
	mu *sync.Mutex

	registry view.Registry
	viewID   string

	cam camera.Camera

	// active is the smoothed camera offset, chasing the rotated base offset.
	active mgl32.Vec3

	// timeScaled switches the offset filter to a frame-rate independent
	// variant. Off by default: the original design applies the filter once
	// per update call, and that behavior is preserved.
	timeScaled bool
}

var _ ThirdPersonController = &thirdPersonImpl{}

// smoothingReferenceHz is the tick rate the per-call smoothing coefficient
// was tuned against; the time-scaled filter variant normalizes to it.
const smoothingReferenceHz = 60.0

// NewThirdPerson creates a third-person follow controller reading its view
// offsets from the given registry.
//
// Parameters:
//   - registry: the view offset registry
//   - viewID: the initially selected view id (must exist in the registry)
//   - options: functional options to configure the controller
//
// Returns:
//   - ThirdPersonController: the newly created controller
func NewThirdPerson(registry view.Registry, viewID string, options ...ThirdPersonOption) ThirdPersonController {
	t := &thirdPersonImpl{
		mu:       &sync.Mutex{},
		registry: registry,
		viewID:   viewID,
		cam:      camera.NewCamera(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *thirdPersonImpl) SetView(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.registry.Get(id); !ok {
		return false
	}
	t.viewID = id
	return true
}

func (t *thirdPersonImpl) View() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.viewID
}

func (t *thirdPersonImpl) Advance(subject SubjectState, in input.Adapter, dt float32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	off, ok := t.registry.Get(t.viewID)
	if !ok {
		return
	}

	// Deltas staged for the orbit path are meaningless here; drain them so
	// they don't replay after the next mode switch.
	in.ConsumeDeltas()

	rot := mgl32.Rotate3DY(subject.Yaw)
	target := rot.Mul3x1(mgl32.Vec3(off.Base))

	s := off.Smoothing
	if t.timeScaled {
		// Equivalent per-frame coefficient for the actual dt, normalized to
		// the reference tick rate the per-call coefficient was tuned at.
		s = 1 - float32(math.Pow(float64(1-s), float64(dt)*smoothingReferenceHz))
	}
	t.active = mgl32.Vec3{
		common.Lerp(t.active.X(), target.X(), s),
		common.Lerp(t.active.Y(), target.Y(), s),
		common.Lerp(t.active.Z(), target.Z(), s),
	}

	eye := subject.Position.Add(t.active)
	lookAt := subject.Position.Add(rot.Mul3x1(mgl32.Vec3(off.LookAt)))
	t.cam.LookAtFrom(eye, lookAt)

	// Snap rather than interpolate: the projection matrix is only rebuilt
	// when the value actually changes.
	if t.cam.Pose().Fov != off.Fov {
		t.cam.SetFov(off.Fov)
	}
}

func (t *thirdPersonImpl) Activate(subject SubjectState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	off, ok := t.registry.Get(t.viewID)
	if !ok {
		return
	}
	rot := mgl32.Rotate3DY(subject.Yaw)
	t.active = rot.Mul3x1(mgl32.Vec3(off.Base))
	eye := subject.Position.Add(t.active)
	lookAt := subject.Position.Add(rot.Mul3x1(mgl32.Vec3(off.LookAt)))
	t.cam.LookAtFrom(eye, lookAt)
	if t.cam.Pose().Fov != off.Fov {
		t.cam.SetFov(off.Fov)
	}
}

func (t *thirdPersonImpl) SettledPose(subject SubjectState) camera.Pose {
	t.mu.Lock()
	defer t.mu.Unlock()

	off, ok := t.registry.Get(t.viewID)
	if !ok {
		return t.cam.Pose()
	}
	rot := mgl32.Rotate3DY(subject.Yaw)
	eye := subject.Position.Add(rot.Mul3x1(mgl32.Vec3(off.Base)))
	lookAt := subject.Position.Add(rot.Mul3x1(mgl32.Vec3(off.LookAt)))
	return camera.PoseLookingAt(eye, lookAt, t.cam.Up(), off.Fov)
}

func (t *thirdPersonImpl) Camera() camera.Camera {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cam
}
