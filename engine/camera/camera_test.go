package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < epsilon
}

func TestPoseForward(t *testing.T) {
	cases := []struct {
		name   string
		orient mgl32.Quat
		ex     mgl32.Vec3
	}{
		{"identity", mgl32.QuatIdent(), mgl32.Vec3{0, 0, -1}},
		{"yaw_180", mgl32.QuatRotate(math.Pi, mgl32.Vec3{0, 1, 0}), mgl32.Vec3{0, 0, 1}},
		{"yaw_90_left", mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0}), mgl32.Vec3{-1, 0, 0}},
		{"pitch_down_90", mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{1, 0, 0}), mgl32.Vec3{0, -1, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Pose{Orientation: c.orient}
			if got := p.Forward(); !vecNear(got, c.ex) {
				t.Fatalf("Forward() = %v, want %v", got, c.ex)
			}
		})
	}
}

func TestPoseLookingAt(t *testing.T) {
	cases := []struct {
		name        string
		eye, center mgl32.Vec3
	}{
		{"down_negative_z", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}},
		{"off_axis", mgl32.Vec3{3, 4, 5}, mgl32.Vec3{-1, 1, 2}},
		{"behind", mgl32.Vec3{0, 2, -6}, mgl32.Vec3{0, 1, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := PoseLookingAt(c.eye, c.center, mgl32.Vec3{0, 1, 0}, 1.0)
			if p.Position != c.eye {
				t.Fatalf("Position = %v, want %v", p.Position, c.eye)
			}
			want := c.center.Sub(c.eye).Normalize()
			if got := p.Forward(); !vecNear(got, want) {
				t.Fatalf("Forward() = %v, want %v", got, want)
			}
			if p.Fov != 1.0 {
				t.Fatalf("Fov = %v, want 1.0", p.Fov)
			}
		})
	}
}

func TestLookAtFromMatchesPose(t *testing.T) {
	cam := NewCamera()
	eye := mgl32.Vec3{2, 3, 4}
	center := mgl32.Vec3{0, 1, 0}
	cam.LookAtFrom(eye, center)

	want := center.Sub(eye).Normalize()
	if got := cam.Pose().Forward(); !vecNear(got, want) {
		t.Fatalf("Forward() after LookAtFrom = %v, want %v", got, want)
	}
	if cam.Pose().Position != eye {
		t.Fatalf("Position = %v, want %v", cam.Pose().Position, eye)
	}
}

func TestViewMatrixTransformsLookTarget(t *testing.T) {
	// A point the camera looks at must land on the view-space -Z axis.
	cam := NewCamera()
	eye := mgl32.Vec3{5, 2, 5}
	center := mgl32.Vec3{0, 0, 0}
	cam.LookAtFrom(eye, center)

	v := cam.ViewMatrix().Mul4x1(center.Vec4(1))
	if math.Abs(float64(v.X())) > epsilon || math.Abs(float64(v.Y())) > epsilon {
		t.Fatalf("look target not centered in view space: %v", v)
	}
	if v.Z() >= 0 {
		t.Fatalf("look target should be in front of the camera (negative z), got %v", v.Z())
	}
	dist := eye.Sub(center).Len()
	if math.Abs(float64(-v.Z()-dist)) > epsilon {
		t.Fatalf("view-space depth = %v, want %v", -v.Z(), dist)
	}
}

func TestSetAspectIdempotent(t *testing.T) {
	cam := NewCamera(WithAspect(16.0 / 9.0))
	before := cam.ProjectionMatrix()

	cam.SetAspect(16.0 / 9.0)
	if cam.ProjectionMatrix() != before {
		t.Fatalf("projection changed on idempotent SetAspect")
	}

	cam.SetAspect(4.0 / 3.0)
	if cam.ProjectionMatrix() == before {
		t.Fatalf("projection unchanged after new aspect ratio")
	}
	if cam.Aspect() != 4.0/3.0 {
		t.Fatalf("Aspect() = %v, want %v", cam.Aspect(), 4.0/3.0)
	}
}

func TestProjectionKinds(t *testing.T) {
	persp := NewCamera(WithFov(1.0), WithAspect(2.0))
	ortho := NewCamera(WithProjection(ProjectionOrthographic), WithOrthoExtent(10), WithAspect(2.0))

	if persp.ProjectionMatrix() == ortho.ProjectionMatrix() {
		t.Fatalf("perspective and orthographic projections should differ")
	}

	// Orthographic projection ignores fov entirely.
	before := ortho.ProjectionMatrix()
	ortho.SetFov(0.5)
	if ortho.ProjectionMatrix() != before {
		t.Fatalf("orthographic projection should not depend on fov")
	}

	// Switching the pose's projection kind swaps the matrix family.
	p := persp.Pose()
	p.Projection = ProjectionOrthographic
	persp.SetPose(p)
	if persp.ProjectionMatrix() == mgl32.Perspective(1.0, 2.0, persp.Near(), persp.Far()) {
		t.Fatalf("projection still perspective after pose switched to orthographic")
	}
}

func TestViewProjectionComposition(t *testing.T) {
	cam := NewCamera(WithPose(Pose{
		Position:    mgl32.Vec3{1, 2, 3},
		Orientation: mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0}),
		Fov:         1.2,
		Projection:  ProjectionPerspective,
	}), WithAspect(1.5))

	want := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	if got := cam.ViewProjectionMatrix(); got != want {
		t.Fatalf("ViewProjectionMatrix != projection * view")
	}
}
