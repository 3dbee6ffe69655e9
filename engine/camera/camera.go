package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	pose Pose
	up   mgl32.Vec3

	aspect      float32
	near        float32
	far         float32
	orthoExtent float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera defines the interface for a camera whose pose is driven by exactly
// one controller at a time. The camera holds lens settings and recomputes
// view/projection matrices whenever its pose or lens parameters change.
// Consumers read the pose and matrices; only the owning controller writes.
type Camera interface {
	// Pose returns a copy of the camera's current pose.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose

	// SetPose replaces the camera's pose and recomputes matrices.
	//
	// Parameters:
	//   - pose: the new pose
	SetPose(pose Pose)

	// LookAtFrom positions the camera at eye, oriented toward center, keeping
	// the current field of view and projection kind.
	//
	// Parameters:
	//   - eye: camera world-space position
	//   - center: world-space point to look at
	LookAtFrom(eye, center mgl32.Vec3)

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio and recomputes the projection matrix.
	// Idempotent and safe to call at any time, including mid-transition.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current world-to-camera matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix for the pose's
	// projection kind.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined projection * view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu: &sync.Mutex{},
		pose: Pose{
			Orientation: mgl32.QuatIdent(),
			Fov:         45.0 * (math.Pi / 180.0),
			Projection:  ProjectionPerspective,
		},
		up:          mgl32.Vec3{0, 1, 0},
		aspect:      1.0,
		near:        0.1,
		far:         1000.0,
		orthoExtent: 10.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Pose() Pose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pose
}

func (c *cameraImpl) SetPose(pose Pose) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pose = pose
	c.updateMatrices()
}

func (c *cameraImpl) LookAtFrom(eye, center mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pose.Position = eye
	c.pose.Orientation = mgl32.Mat4ToQuat(mgl32.LookAtV(eye, center, c.up)).Inverse()
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pose.Fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect == c.aspect {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

// updateMatrices recalculates the view, projection, and view-projection
// matrices from the current pose and lens settings.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	p := c.pose.Position
	c.viewMatrix = c.pose.Orientation.Inverse().Mat4().
		Mul4(mgl32.Translate3D(-p.X(), -p.Y(), -p.Z()))

	switch c.pose.Projection {
	case ProjectionOrthographic:
		h := c.orthoExtent
		w := h * c.aspect
		c.projectionMatrix = mgl32.Ortho(-w, w, -h, h, c.near, c.far)
	default:
		c.projectionMatrix = mgl32.Perspective(c.pose.Fov, c.aspect, c.near, c.far)
	}

	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
