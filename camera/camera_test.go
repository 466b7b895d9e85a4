package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testCamera() *Camera {
	return New(mgl32.Vec3{0, 0, 0}, 0.8, 0.55, 90, 15, 220, 55)
}

func TestPositionKeepsOrbitDistance(t *testing.T) {
	c := testCamera()

	for i := 0; i < 16; i++ {
		c.Orbit(0.4, 0.1)
		d := c.Position().Sub(c.Target).Len()
		if math.Abs(float64(d-c.Distance)) > 0.001 {
			t.Fatalf("eye is %f from target, want %f", d, c.Distance)
		}
	}
}

func TestPitchClamps(t *testing.T) {
	c := testCamera()

	c.Orbit(0, -10)
	if c.Pitch != minPitch {
		t.Errorf("pitch %f, want clamp at %f", c.Pitch, minPitch)
	}
	if c.Position().Y() <= c.Target.Y() {
		t.Errorf("camera dropped below the target at minimum pitch")
	}

	c.Orbit(0, 10)
	if c.Pitch != maxPitch {
		t.Errorf("pitch %f, want clamp at %f", c.Pitch, maxPitch)
	}
}

func TestDollyClamps(t *testing.T) {
	c := testCamera()

	c.Dolly(0.001)
	if c.Distance != c.MinDistance {
		t.Errorf("distance %f, want clamp at %f", c.Distance, c.MinDistance)
	}

	c.Dolly(10000)
	if c.Distance != c.MaxDistance {
		t.Errorf("distance %f, want clamp at %f", c.Distance, c.MaxDistance)
	}
}

func TestRotationFacesTarget(t *testing.T) {
	c := testCamera()

	// Rotating the default forward axis by the camera orientation must give
	// the direction from the eye to the target.
	forward := c.Rotation().Rotate(mgl32.Vec3{0, 0, -1})
	want := c.Target.Sub(c.Position()).Normalize()

	if forward.Sub(want).Len() > 1e-4 {
		t.Errorf("rotated forward %v, want view direction %v", forward, want)
	}

	// The camera sits above the target, so the forward vector must carry the
	// downward tilt; a flat Y means the pitch got lost on the way through.
	if forward.Y() >= -0.1 {
		t.Errorf("rotated forward %v has no downward pitch", forward)
	}
}

func TestPanFollowsYaw(t *testing.T) {
	c := testCamera()
	c.Yaw = 0 // camera sits on +X looking toward -X

	before := c.Target
	c.Pan(0, 2) // forward: toward the target, i.e. -X

	if c.Target.X() >= before.X() {
		t.Errorf("forward pan moved target X from %f to %f, want decrease",
			before.X(), c.Target.X())
	}
	if math.Abs(float64(c.Target.Z()-before.Z())) > 1e-5 {
		t.Errorf("forward pan drifted sideways by %f", c.Target.Z()-before.Z())
	}
}
