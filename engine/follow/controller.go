package follow

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/babylon-detective/island-crisis/engine/camera"
	"github.com/babylon-detective/island-crisis/engine/input"
)

// SubjectState is the per-frame snapshot of the tracked subject handed to
// follow controllers. It is owned by the director, which retains the
// previous-frame position solely so orbit following can compute a one-frame
// displacement; controllers only read it.
type SubjectState struct {
	// Position is the subject's current world position.
	Position mgl32.Vec3

	// PrevPosition is the subject's world position on the previous frame.
	PrevPosition mgl32.Vec3

	// Yaw is the subject's facing angle in radians around the world up axis.
	Yaw float32
}

// Displacement returns the subject's movement since the previous frame.
//
// Returns:
//   - mgl32.Vec3: Position - PrevPosition
func (s SubjectState) Displacement() mgl32.Vec3 {
	return s.Position.Sub(s.PrevPosition)
}

// Controller computes a camera pose each frame from subject state and input,
// for one specific viewing mode. Each controller exclusively owns its Camera;
// the director selects which controller advances per frame.
type Controller interface {
	// Advance performs one frame of follow logic, consuming the subject
	// snapshot and any staged input, and writes the resulting pose to the
	// owned camera. Never fails; all per-frame paths are total.
	//
	// Parameters:
	//   - subject: the subject snapshot for this frame
	//   - in: the input adapter whose staged deltas/angles this mode consumes
	//   - dt: elapsed frame time in seconds
	Advance(subject SubjectState, in input.Adapter, dt float32)

	// Activate prepares the controller to take ownership of the frame:
	// settles internal state against the subject and snaps the owned camera
	// to the settled pose, carrying no residual velocity.
	//
	// Parameters:
	//   - subject: the subject snapshot at activation time
	Activate(subject SubjectState)

	// SettledPose computes the pose this controller would hold once fully
	// converged on the given subject, without mutating any state. Used as the
	// destination of a mode transition.
	//
	// Parameters:
	//   - subject: the subject snapshot to settle against
	//
	// Returns:
	//   - camera.Pose: the converged pose
	SettledPose(subject SubjectState) camera.Pose

	// Camera returns the camera this controller exclusively drives.
	//
	// Returns:
	//   - camera.Camera: the owned camera
	Camera() camera.Camera
}
