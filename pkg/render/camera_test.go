package render

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestProjectCenter(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Position = r3.Vec{Z: 30}
	cam.Target = r3.Vec{}

	x, y, depth, ok := cam.Project(r3.Vec{})
	if !ok {
		t.Fatal("origin should be visible")
	}
	if math.Abs(x-40) > 0.5 || math.Abs(y-12) > 0.5 {
		t.Errorf("origin projected to (%f, %f), want viewport center (40, 12)", x, y)
	}
	if math.Abs(depth-30) > 1e-9 {
		t.Errorf("depth = %f, want 30", depth)
	}
}

func TestProjectClipPlanes(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Position = r3.Vec{Z: 30}
	cam.Target = r3.Vec{}

	if _, _, _, ok := cam.Project(r3.Vec{Z: 31}); ok {
		t.Error("point behind the camera should be clipped")
	}
	if _, _, _, ok := cam.Project(r3.Vec{Z: 29.95}); ok {
		t.Error("point inside the near plane should be clipped")
	}
	if _, _, _, ok := cam.Project(r3.Vec{Z: -1000}); ok {
		t.Error("point beyond the far plane should be clipped")
	}
}

func TestRayThroughCenterMatchesForward(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Position = r3.Vec{X: 5, Y: 3, Z: 30}
	cam.Target = r3.Vec{}

	_, _, forward := cam.Basis()
	origin, dir := cam.Ray(40, 12)

	if origin != cam.Position {
		t.Errorf("ray origin = %+v, want camera position", origin)
	}
	if r3.Norm(r3.Sub(dir, forward)) > 1e-9 {
		t.Errorf("center ray = %+v, want forward %+v", dir, forward)
	}
}

func TestSetViewportChangesAspect(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Position = r3.Vec{Z: 30}
	cam.Target = r3.Vec{}

	x1, _, _, _ := cam.Project(r3.Vec{X: 5})
	cam.SetViewport(160, 24)
	x2, _, _, _ := cam.Project(r3.Vec{X: 5})

	// Doubling the width doubles the center offset but halves the
	// normalized deflection, so the cell offset from center stays put
	if math.Abs((x1-40)-(x2-80)) > 0.5 {
		t.Errorf("cell offset changed with width: %f vs %f", x1-40, x2-80)
	}

	cam.SetViewport(80, 48)
	if w, h := cam.Viewport(); w != 80 || h != 48 {
		t.Errorf("Viewport() = %d,%d after resize", w, h)
	}
}

func TestBasisDegenerateLookUp(t *testing.T) {
	cam := NewCamera(80, 24)
	cam.Position = r3.Vec{Y: 10}
	cam.Target = r3.Vec{}

	right, up, forward := cam.Basis()
	for name, v := range map[string]r3.Vec{"right": right, "up": up, "forward": forward} {
		if math.Abs(r3.Norm(v)-1) > 1e-9 {
			t.Errorf("%s not unit length: %+v", name, v)
		}
	}
	if math.Abs(r3.Dot(right, forward)) > 1e-9 || math.Abs(r3.Dot(up, forward)) > 1e-9 {
		t.Error("basis vectors not orthogonal")
	}
}

func TestPixelAngle(t *testing.T) {
	cam := NewCamera(80, 24)
	angle := cam.PixelAngle()
	if angle <= 0 {
		t.Fatalf("PixelAngle() = %f", angle)
	}
	// The whole viewport height should span roughly the field of view
	if total := angle * 24; math.Abs(total-2*math.Tan(cam.FOV/2)) > 1e-9 {
		t.Errorf("pixel angle does not sum to the view height: %f", total)
	}
}
