package follow

import "github.com/babylon-detective/island-crisis/engine/camera"

// OrbitOption is a functional option for configuring an OrbitController.
type OrbitOption func(*orbitImpl)

// WithOrbitCamera sets the camera the controller drives.
//
// Parameters:
//   - cam: the camera to drive
//
// Returns:
//   - OrbitOption: functional option to set the camera
func WithOrbitCamera(cam camera.Camera) OrbitOption {
	return func(o *orbitImpl) {
		o.cam = cam
	}
}

// WithOrbitRadius sets the initial orbit radius (distance from target).
//
// Parameters:
//   - radius: distance from the orbit target
//
// Returns:
//   - OrbitOption: functional option to set the radius
func WithOrbitRadius(radius float32) OrbitOption {
	return func(o *orbitImpl) {
		o.radius = radius
	}
}

// WithOrbitAngles sets the initial horizontal and vertical angles.
//
// Parameters:
//   - azimuth: horizontal angle in radians (0 = +Z axis)
//   - elevation: vertical angle in radians (0 = horizontal)
//
// Returns:
//   - OrbitOption: functional option to set the angles
func WithOrbitAngles(azimuth, elevation float32) OrbitOption {
	return func(o *orbitImpl) {
		o.azimuth = azimuth
		o.elevation = elevation
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - OrbitOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) OrbitOption {
	return func(o *orbitImpl) {
		o.minRadius = min
		o.maxRadius = max
	}
}

// WithElevationBounds sets the minimum and maximum elevation angles.
//
// Parameters:
//   - min: minimum vertical angle in radians (prevents looking straight down)
//   - max: maximum vertical angle in radians (prevents flipping over)
//
// Returns:
//   - OrbitOption: functional option to set elevation bounds
func WithElevationBounds(min, max float32) OrbitOption {
	return func(o *orbitImpl) {
		o.minElevation = min
		o.maxElevation = max
	}
}

// WithRotationDamping sets the fraction of staged rotation input applied per
// frame. 1 applies input immediately; smaller values smooth mouse drags.
//
// Parameters:
//   - damping: fraction in (0, 1]
//
// Returns:
//   - OrbitOption: functional option to set the damping
func WithRotationDamping(damping float32) OrbitOption {
	return func(o *orbitImpl) {
		o.damping = damping
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - OrbitOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) OrbitOption {
	return func(o *orbitImpl) {
		o.zoomSpeed = speed
	}
}

// WithTargetHeight sets the vertical offset of the orbit look-at target
// above the subject position.
//
// Parameters:
//   - height: vertical offset in world units
//
// Returns:
//   - OrbitOption: functional option to set the target height
func WithTargetHeight(height float32) OrbitOption {
	return func(o *orbitImpl) {
		o.targetHeight = height
	}
}
