package follow

import "github.com/babylon-detective/island-crisis/engine/camera"

// ThirdPersonOption is a functional option for configuring a
// ThirdPersonController.
type ThirdPersonOption func(*thirdPersonImpl)

// WithThirdPersonCamera sets the camera the controller drives.
//
// Parameters:
//   - cam: the camera to drive
//
// Returns:
//   - ThirdPersonOption: functional option to set the camera
func WithThirdPersonCamera(cam camera.Camera) ThirdPersonOption {
	return func(t *thirdPersonImpl) {
		t.cam = cam
	}
}

// WithTimeScaledSmoothing switches the offset filter from once-per-call to a
// frame-rate independent variant normalized to a 60Hz reference tick.
// The default preserves the original once-per-call behavior.
//
// Parameters:
//   - enabled: true to scale the filter by elapsed frame time
//
// Returns:
//   - ThirdPersonOption: functional option to set the smoothing variant
func WithTimeScaledSmoothing(enabled bool) ThirdPersonOption {
	return func(t *thirdPersonImpl) {
		t.timeScaled = enabled
	}
}
