package follow

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/babylon-detective/island-crisis/common"
	"github.com/babylon-detective/island-crisis/engine/camera"
	"github.com/babylon-detective/island-crisis/engine/input"
)

// OrbitController is a follow Controller for the free-orbit mode: a
// user-rotatable spherical offset around a look-at target that stays glued
// to the moving subject.
type OrbitController interface {
	Controller

	// Zoom adjusts the orbit radius. Positive delta zooms in (closer to the
	// target), clamped to the configured radius bounds.
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float32)

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32
}

type orbitImpl struct {
	mu *sync.Mutex

	cam camera.Camera

	// Orbit look-at target; glued to the subject via per-frame displacement.
	target mgl32.Vec3

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	// Constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// Damped rotation: staged input deltas drain into the angles at this
	// fraction per frame, giving mouse-drag style smoothing.
	damping      float32
	pendingYaw   float32
	pendingPitch float32

	zoomSpeed float32

	// Vertical offset of the orbit target above the subject position.
	targetHeight float32

	initialized bool
}

var _ OrbitController = &orbitImpl{}

// NewOrbit creates an orbit follow controller with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbit(options ...OrbitOption) OrbitController {
	o := &orbitImpl{
		mu:  &sync.Mutex{},
		cam: camera.NewCamera(),

		radius:    12.0,
		azimuth:   0.0,
		elevation: float32(math.Pi / 6),

		minRadius:    2.0,
		maxRadius:    120.0,
		minElevation: float32(-math.Pi/2 + 0.05),
		maxElevation: float32(math.Pi/2 - 0.05),

		damping:      0.35,
		zoomSpeed:    1.5,
		targetHeight: 1.0,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

func (o *orbitImpl) Advance(subject SubjectState, in input.Adapter, dt float32) {
	o.mu.Lock()
	defer o.mu.Unlock()

	// Carry the orbit along with the subject. Translating the target by the
	// one-frame displacement shifts the camera position by exactly the same
	// vector, preserving any user-applied rotation.
	o.target = o.target.Add(subject.Displacement())

	dYaw, dPitch := in.ConsumeDeltas()
	o.pendingYaw += dYaw
	o.pendingPitch += dPitch

	stepYaw := o.pendingYaw * o.damping
	stepPitch := o.pendingPitch * o.damping
	o.pendingYaw -= stepYaw
	o.pendingPitch -= stepPitch

	// Wrap so long orbiting sessions never walk the angle toward float
	// precision loss.
	o.azimuth = common.WrapAngle(o.azimuth + stepYaw)
	o.elevation = common.Clamp(o.elevation+stepPitch, o.minElevation, o.maxElevation)

	o.cam.LookAtFrom(o.positionFromSpherical(), o.target)
}

func (o *orbitImpl) Activate(subject SubjectState) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.target = subject.Position.Add(mgl32.Vec3{0, o.targetHeight, 0})
	if !o.initialized {
		o.initialized = true
	}
	o.pendingYaw = 0
	o.pendingPitch = 0
	o.cam.LookAtFrom(o.positionFromSpherical(), o.target)
}

func (o *orbitImpl) SettledPose(subject SubjectState) camera.Pose {
	o.mu.Lock()
	defer o.mu.Unlock()

	target := subject.Position.Add(mgl32.Vec3{0, o.targetHeight, 0})
	eye := sphericalOffset(o.radius, o.azimuth, o.elevation).Add(target)
	return camera.PoseLookingAt(eye, target, o.cam.Up(), o.cam.Pose().Fov)
}

func (o *orbitImpl) Camera() camera.Camera {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cam
}

func (o *orbitImpl) Zoom(delta float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.radius = common.Clamp(o.radius-delta*o.zoomSpeed, o.minRadius, o.maxRadius)
	o.cam.LookAtFrom(o.positionFromSpherical(), o.target)
}

func (o *orbitImpl) Radius() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.radius
}

func (o *orbitImpl) Azimuth() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.azimuth
}

func (o *orbitImpl) Elevation() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.elevation
}

// positionFromSpherical computes the camera position from the target point
// and spherical coordinates. Caller must hold the mutex.
func (o *orbitImpl) positionFromSpherical() mgl32.Vec3 {
	return sphericalOffset(o.radius, o.azimuth, o.elevation).Add(o.target)
}

// sphericalOffset converts spherical coordinates to a cartesian offset.
// Azimuth 0 places the camera on the +Z axis.
func sphericalOffset(radius, azimuth, elevation float32) mgl32.Vec3 {
	cosElev := float32(math.Cos(float64(elevation)))
	sinElev := float32(math.Sin(float64(elevation)))
	cosAzim := float32(math.Cos(float64(azimuth)))
	sinAzim := float32(math.Sin(float64(azimuth)))

	return mgl32.Vec3{
		radius * cosElev * sinAzim,
		radius * sinElev,
		radius * cosElev * cosAzim,
	}
}
