package runner

import "testing"

const (
	testGravity = 0.6
	testImpulse = -12.0
	testGroundY = 260.0
)

func groundedActor() Actor {
	return Actor{X: 50, Y: testGroundY - 40, Width: 40, Height: 40}
}

func TestIntegrateGravity(t *testing.T) {
	a := Actor{X: 50, Y: 100, Width: 40, Height: 40, Airborne: true}

	Integrate(&a, testGravity, testGroundY)

	if a.VY != testGravity {
		t.Errorf("VY = %f, expected %f", a.VY, testGravity)
	}
	if a.Y != 100+testGravity {
		t.Errorf("Y = %f, expected %f", a.Y, 100+testGravity)
	}
	if !a.Airborne {
		t.Error("actor above ground should stay airborne")
	}
}

func TestIntegrateGroundClamp(t *testing.T) {
	a := Actor{X: 50, Y: 215, VY: 9, Width: 40, Height: 40, Airborne: true}

	Integrate(&a, testGravity, testGroundY)

	if a.Y != testGroundY-a.Height {
		t.Errorf("Y = %f, expected clamp to %f", a.Y, testGroundY-a.Height)
	}
	if a.VY != 0 {
		t.Errorf("VY = %f, landing should drop residual velocity", a.VY)
	}
	if a.Airborne {
		t.Error("landing should clear the airborne flag")
	}
}

func TestIntegrateGroundedStaysPut(t *testing.T) {
	a := groundedActor()
	for i := 0; i < 10; i++ {
		Integrate(&a, testGravity, testGroundY)
	}
	if a.Y != testGroundY-a.Height || a.VY != 0 || a.Airborne {
		t.Errorf("grounded actor drifted: %+v", a)
	}
}

func TestJump(t *testing.T) {
	a := groundedActor()

	if !Jump(&a, testImpulse) {
		t.Fatal("jump from the ground should be accepted")
	}
	if a.VY != testImpulse {
		t.Errorf("VY = %f, expected %f", a.VY, testImpulse)
	}
	if !a.Airborne {
		t.Error("jump should set airborne")
	}

	// Second jump before landing is a no-op
	a.VY = -5
	if Jump(&a, testImpulse) {
		t.Error("jump while airborne should be rejected")
	}
	if a.VY != -5 {
		t.Errorf("rejected jump changed VY to %f", a.VY)
	}
}

func TestJumpArc(t *testing.T) {
	a := groundedActor()
	floor := testGroundY - a.Height
	Jump(&a, testImpulse)

	apex := floor
	ticks := 0
	for a.Airborne {
		Integrate(&a, testGravity, testGroundY)
		ticks++
		if a.Y > floor {
			t.Fatalf("tick %d: actor below ground, Y = %f", ticks, a.Y)
		}
		if a.Y < apex {
			apex = a.Y
		}
		if ticks > 1000 {
			t.Fatal("actor never landed")
		}
	}

	// v²/2g = 144/1.2 = 120 world units, minus the discrete-step shortfall
	if rise := floor - apex; rise < 110 || rise > 120 {
		t.Errorf("jump height = %f, expected about 120", rise)
	}
	if ticks < 38 || ticks > 42 {
		t.Errorf("airtime = %d ticks, expected about 40", ticks)
	}
}
