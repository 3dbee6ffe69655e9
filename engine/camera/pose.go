package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection identifies the kind of projection a camera uses.
type Projection int

const (
	// ProjectionPerspective is the standard perspective projection driven by
	// field of view and aspect ratio.
	ProjectionPerspective Projection = iota

	// ProjectionOrthographic is a parallel projection with no perspective
	// foreshortening, sized by the orthographic extent and aspect ratio.
	ProjectionOrthographic
)

// Pose is the full positional and optical state of a camera at one instant.
// It is a plain value: whichever controller currently drives the camera owns
// the authoritative Pose; everyone else reads copies.
//
// Orientation is the camera's world-space rotation, mapping camera-local
// axes to world axes. Camera-local forward is -Z, matching the GL convention.
type Pose struct {
	// Position is the camera's world-space position.
	Position mgl32.Vec3

	// Orientation rotates camera-local vectors into world space.
	Orientation mgl32.Quat

	// Fov is the vertical field of view in radians (perspective only).
	Fov float32

	// Projection is the projection kind this pose renders with.
	Projection Projection
}

// Forward returns the camera's forward direction in world space.
//
// Returns:
//   - mgl32.Vec3: unit forward vector (camera-local -Z rotated into world space)
func (p Pose) Forward() mgl32.Vec3 {
	return p.Orientation.Rotate(mgl32.Vec3{0, 0, -1})
}

// PoseLookingAt builds a Pose positioned at eye and oriented toward center.
//
// Parameters:
//   - eye: camera world-space position
//   - center: world-space point the camera looks at
//   - up: up vector defining roll (typically 0,1,0)
//   - fov: vertical field of view in radians
//
// Returns:
//   - Pose: a perspective pose at eye looking at center
func PoseLookingAt(eye, center, up mgl32.Vec3, fov float32) Pose {
	// The upper-left 3x3 of LookAtV is the world-to-camera rotation; the
	// pose stores the camera's world orientation, so invert it. The
	// translation column is ignored by the quaternion conversion.
	return Pose{
		Position:    eye,
		Orientation: mgl32.Mat4ToQuat(mgl32.LookAtV(eye, center, up)).Inverse(),
		Fov:         fov,
		Projection:  ProjectionPerspective,
	}
}
