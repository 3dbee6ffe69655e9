package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPose sets the camera's initial pose.
//
// Parameters:
//   - pose: the initial pose
//
// Returns:
//   - CameraBuilderOption: a function that sets the initial pose
func WithPose(pose Pose) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pose = pose
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: the up vector (typically 0,1,0)
//
// Returns:
//   - CameraBuilderOption: a function that sets the up vector
func WithUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = up
	}
}

// WithFov sets the camera's field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pose.Fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - CameraBuilderOption: a function that sets the aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance (must be > 0 for perspective)
//   - far: far plane distance (must be > near)
//
// Returns:
//   - CameraBuilderOption: a function that sets the clip planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithProjection sets the projection kind.
//
// Parameters:
//   - projection: perspective or orthographic
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection kind
func WithProjection(projection Projection) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pose.Projection = projection
	}
}

// WithOrthoExtent sets the vertical half-extent used by the orthographic
// projection. Ignored for perspective cameras.
//
// Parameters:
//   - extent: vertical half-extent in world units
//
// Returns:
//   - CameraBuilderOption: a function that sets the orthographic extent
func WithOrthoExtent(extent float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orthoExtent = extent
	}
}
