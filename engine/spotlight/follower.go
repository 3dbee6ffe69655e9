package spotlight

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Consumer receives spotlight parameter updates. Implemented by the external
// lighting system, e.g. a terrain shader driving a shadow-casting light.
type Consumer interface {
	// SetSpotlight republishes the full spotlight state.
	//
	// Parameters:
	//   - position: world-space light position
	//   - direction: normalized light cone axis
	//   - color: light color as (r, g, b)
	//   - intensity: scalar intensity (0 when the light is not called for)
	SetSpotlight(position, direction, color mgl32.Vec3, intensity float32)
}

// Follower keeps the dramatic spot light positioned and aimed relative to the
// subject and republishes its parameters to the lighting consumer each frame.
//
// The spotlight is a projection of subject state, not a store of truth: its
// position and direction are derived fresh every refresh, never cached.
type Follower interface {
	// Refresh recomputes the light placement from the subject position and
	// the camera's view direction, then republishes to the consumer. When the
	// light is not required, intensity is republished as zero rather than
	// detaching the light.
	//
	// Parameters:
	//   - subject: the subject's world position
	//   - viewForward: the active camera's forward direction
	Refresh(subject, viewForward mgl32.Vec3)

	// SetRequired marks whether the active mode calls for the light.
	//
	// Parameters:
	//   - required: true if the current mode wants dramatic lighting
	SetRequired(required bool)

	// Light returns the underlying light the follower drives.
	//
	// Returns:
	//   - Light: the driven light
	Light() Light
}

type followerImpl struct {
	mu *sync.Mutex

	light    Light
	consumer Consumer

	// height lifts the light above the subject; forwardOffset pulls it back
	// along the view direction; aimLift raises the aim point off the ground.
	height        float32
	forwardOffset float32
	aimLift       float32
}

var _ Follower = &followerImpl{}

// NewFollower creates a spotlight Follower.
//
// Parameters:
//   - consumer: the lighting consumer to republish to (nil suppresses publishing)
//   - options: functional options to configure the follower
//
// Returns:
//   - Follower: the newly created follower
func NewFollower(consumer Consumer, options ...FollowerOption) Follower {
	f := &followerImpl{
		mu:            &sync.Mutex{},
		light:         NewLight(),
		consumer:      consumer,
		height:        6.0,
		forwardOffset: 2.0,
		aimLift:       0.5,
	}
	for _, option := range options {
		option(f)
	}
	return f
}

func (f *followerImpl) Refresh(subject, viewForward mgl32.Vec3) {
	f.mu.Lock()
	defer f.mu.Unlock()

	forward := normalizeOr(viewForward, mgl32.Vec3{0, 0, -1})

	position := subject.
		Add(mgl32.Vec3{0, f.height, 0}).
		Sub(forward.Mul(f.forwardOffset))
	aim := subject.Add(mgl32.Vec3{0, f.aimLift, 0})

	// Direction is derived fresh every frame; a cached value would drift as
	// the subject moves under the light.
	direction := normalizeOr(aim.Sub(position), mgl32.Vec3{0, -1, 0})

	f.light.SetPosition(position)
	f.light.SetDirection(direction)

	intensity := f.light.Intensity()
	if !f.light.Enabled() {
		intensity = 0
	}
	if f.consumer != nil {
		f.consumer.SetSpotlight(position, direction, f.light.Color(), intensity)
	}
}

func (f *followerImpl) SetRequired(required bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.light.SetEnabled(required)
}

func (f *followerImpl) Light() Light {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.light
}
