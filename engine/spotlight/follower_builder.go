package spotlight

// FollowerOption is a functional option for configuring a Follower.
type FollowerOption func(*followerImpl)

// WithLight sets the light instance the follower drives.
//
// Parameters:
//   - light: the light to drive
//
// Returns:
//   - FollowerOption: functional option to set the light
func WithLight(light Light) FollowerOption {
	return func(f *followerImpl) {
		f.light = light
	}
}

// WithPlacement sets the geometry of the light relative to the subject.
//
// Parameters:
//   - height: vertical offset of the light above the subject
//   - forwardOffset: distance the light is pulled back along the view direction
//   - aimLift: vertical offset of the aim point above the subject
//
// Returns:
//   - FollowerOption: functional option to set the placement
func WithPlacement(height, forwardOffset, aimLift float32) FollowerOption {
	return func(f *followerImpl) {
		f.height = height
		f.forwardOffset = forwardOffset
		f.aimLift = aimLift
	}
}
