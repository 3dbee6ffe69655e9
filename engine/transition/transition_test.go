package transition

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/babylon-detective/island-crisis/engine/camera"
)

// fakeClock is a manually advanced time source for deterministic sampling.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newClockedEngine() (*fakeClock, Engine) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	return clock, NewEngine(WithClock(clock.now))
}

func poseAt(pos mgl32.Vec3, fov float32) camera.Pose {
	return camera.Pose{
		Position:    pos,
		Orientation: mgl32.QuatIdent(),
		Fov:         fov,
		Projection:  camera.ProjectionPerspective,
	}
}

func TestStartRejectsSecondTransition(t *testing.T) {
	_, e := newClockedEngine()
	from := poseAt(mgl32.Vec3{0, 0, 0}, 1)
	to := poseAt(mgl32.Vec3{1, 0, 0}, 1)

	if err := e.Start(from, to, time.Second); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if err := e.Start(from, to, time.Second); err != ErrInFlight {
		t.Fatalf("second Start = %v, want ErrInFlight", err)
	}
	if !e.Active() {
		t.Fatalf("engine should still be active after rejected Start")
	}
}

func TestStepWithoutTransition(t *testing.T) {
	_, e := newClockedEngine()
	if e.Active() {
		t.Fatalf("new engine should not be active")
	}
	if _, done := e.Step(); done {
		t.Fatalf("Step with no transition must not report done")
	}
}

func TestEasedPositionAtHalfway(t *testing.T) {
	// With a cubic ease-out, t=0.5s of a 1s transition is 87.5% of the way.
	clock, e := newClockedEngine()
	from := poseAt(mgl32.Vec3{0, 0, 0}, 1)
	to := poseAt(mgl32.Vec3{8, 0, 0}, 1)

	if err := e.Start(from, to, time.Second); err != nil {
		t.Fatalf("Start: %v", err)
	}

	clock.advance(500 * time.Millisecond)
	pose, done := e.Step()
	if done {
		t.Fatalf("transition finished early")
	}
	if got := pose.Position.X(); math.Abs(float64(got-7)) > 1e-5 {
		t.Fatalf("position at halfway = %v, want 7 (eased 0.875 of 8)", got)
	}
}

func TestProgressMonotonicAndExactEndpoint(t *testing.T) {
	clock, e := newClockedEngine()
	from := poseAt(mgl32.Vec3{0, 0, 0}, 0.8)
	to := poseAt(mgl32.Vec3{10, -4, 2}, 1.2)

	if err := e.Start(from, to, time.Second); err != nil {
		t.Fatalf("Start: %v", err)
	}

	prevX := float32(-1)
	for i := 0; i < 9; i++ {
		clock.advance(100 * time.Millisecond)
		pose, done := e.Step()
		if done {
			t.Fatalf("done before duration elapsed at step %d", i)
		}
		if pose.Position.X() < prevX {
			t.Fatalf("position regressed at step %d: %v < %v", i, pose.Position.X(), prevX)
		}
		prevX = pose.Position.X()
	}

	clock.advance(200 * time.Millisecond)
	pose, done := e.Step()
	if !done {
		t.Fatalf("transition should complete after duration elapsed")
	}
	// The endpoint is returned exactly, not as an interpolated approximation.
	if pose != to {
		t.Fatalf("final pose %+v, want exact destination %+v", pose, to)
	}
	if e.Active() {
		t.Fatalf("engine still active after completion")
	}

	// done fires exactly once.
	if _, again := e.Step(); again {
		t.Fatalf("done reported twice")
	}
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	_, e := newClockedEngine()
	to := poseAt(mgl32.Vec3{3, 3, 3}, 1)

	if err := e.Start(poseAt(mgl32.Vec3{0, 0, 0}, 1), to, 0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	pose, done := e.Step()
	if !done {
		t.Fatalf("zero duration should complete on the first step")
	}
	if pose != to {
		t.Fatalf("pose = %+v, want %+v", pose, to)
	}
}

func TestOrientationTakesShortArc(t *testing.T) {
	// Construct a pair whose raw quaternions have a negative dot product:
	// 350 degrees of yaw expressed directly is the long way to 10 degrees.
	clock, e := newClockedEngine()
	from := camera.Pose{
		Orientation: mgl32.QuatRotate(mgl32.DegToRad(350), mgl32.Vec3{0, 1, 0}),
		Fov:         1,
	}
	to := camera.Pose{
		Orientation: mgl32.QuatRotate(mgl32.DegToRad(10), mgl32.Vec3{0, 1, 0}),
		Fov:         1,
	}
	if from.Orientation.Dot(to.Orientation) >= 0 {
		t.Fatalf("test setup expects a negative quaternion dot product")
	}

	if err := e.Start(from, to, time.Second); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.advance(500 * time.Millisecond)
	pose, _ := e.Step()

	// On the short arc the midpoint forward vector stays near the two
	// endpoint forwards; the long arc would swing it to the opposite side.
	mid := pose.Forward()
	if ang := math.Acos(float64(mid.Dot(from.Forward()))); ang > 0.5 {
		t.Fatalf("midpoint deviates %v rad from start, long arc taken", ang)
	}
}

func TestFovInterpolates(t *testing.T) {
	clock, e := newClockedEngine()
	from := poseAt(mgl32.Vec3{}, 0.8)
	to := poseAt(mgl32.Vec3{}, 1.2)

	if err := e.Start(from, to, time.Second); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.advance(500 * time.Millisecond)
	pose, _ := e.Step()

	want := float32(0.8 + 0.875*0.4)
	if math.Abs(float64(pose.Fov-want)) > 1e-5 {
		t.Fatalf("fov at halfway = %v, want %v", pose.Fov, want)
	}
}

func TestProjectionFollowsDestination(t *testing.T) {
	clock, e := newClockedEngine()
	from := camera.Pose{Orientation: mgl32.QuatIdent(), Fov: 1, Projection: camera.ProjectionPerspective}
	to := camera.Pose{Orientation: mgl32.QuatIdent(), Fov: 1, Projection: camera.ProjectionOrthographic}

	if err := e.Start(from, to, time.Second); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.advance(10 * time.Millisecond)
	pose, _ := e.Step()
	if pose.Projection != camera.ProjectionOrthographic {
		t.Fatalf("mid-flight projection = %v, want destination kind", pose.Projection)
	}
}

func TestRestartAfterCompletion(t *testing.T) {
	clock, e := newClockedEngine()
	a := poseAt(mgl32.Vec3{0, 0, 0}, 1)
	b := poseAt(mgl32.Vec3{1, 0, 0}, 1)

	if err := e.Start(a, b, 10*time.Millisecond); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.advance(20 * time.Millisecond)
	if _, done := e.Step(); !done {
		t.Fatalf("first transition should have completed")
	}

	if err := e.Start(b, a, time.Second); err != nil {
		t.Fatalf("Start after completion: %v", err)
	}
	if !e.Active() {
		t.Fatalf("engine should be active after restart")
	}
}
