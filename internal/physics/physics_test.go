package physics

import (
	"math"
	"testing"
)

func TestCirclesCollide(t *testing.T) {
	// Overlapping circles
	if !CirclesCollide(V(0, 0), 10, V(15, 0), 10) {
		t.Error("circles should collide (overlapping)")
	}

	// Touching circles count as colliding
	if !CirclesCollide(V(0, 0), 10, V(20, 0), 10) {
		t.Error("circles should collide (touching)")
	}

	// Just apart
	if CirclesCollide(V(0, 0), 10, V(20+1e-9, 0), 10) {
		t.Error("circles should not collide at r1+r2+eps")
	}

	// Same position
	if !CirclesCollide(V(5, 5), 1, V(5, 5), 1) {
		t.Error("same position should collide")
	}
}

func TestCirclesCollideBoundaryDiagonal(t *testing.T) {
	// 3-4-5 triangle: distance exactly 5
	if !CirclesCollide(V(0, 0), 2, V(3, 4), 3) {
		t.Error("circles at distance == r1+r2 should collide")
	}
	if CirclesCollide(V(0, 0), 2, V(3, 4), 2.999999) {
		t.Error("circles just short of touching should not collide")
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a, b := V(0, 0), V(10, 0)

	tests := []struct {
		name string
		p    Vec2
		want Vec2
	}{
		{"projects inside", V(4, 7), V(4, 0)},
		{"clamps before start", V(-5, 3), V(0, 0)},
		{"clamps past end", V(14, -2), V(10, 0)},
		{"on endpoint", V(10, 0), V(10, 0)},
	}

	for _, tt := range tests {
		got, ok := ClosestPointOnSegment(tt.p, a, b)
		if !ok {
			t.Fatalf("%s: unexpected degenerate segment", tt.name)
		}
		if got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestClosestPointOnSegmentDegenerate(t *testing.T) {
	if _, ok := ClosestPointOnSegment(V(1, 1), V(3, 3), V(3, 3)); ok {
		t.Error("zero-length segment should report !ok")
	}
}

func TestCircleTriangleCollideGameOverScenario(t *testing.T) {
	tri := [3]Vec2{V(100, 0), V(70, -10), V(70, 10)}
	if !CircleTriangleCollide(V(100, 0), 5, tri) {
		t.Error("circle centered on the nose vertex should collide")
	}
}

func TestCircleTriangleCollideEdges(t *testing.T) {
	tri := [3]Vec2{V(100, 0), V(70, -10), V(70, 10)}

	// Rear edge is the vertical segment x=70, y in [-10,10].
	if !CircleTriangleCollide(V(60, 0), 10, tri) {
		t.Error("circle touching the rear edge should collide")
	}
	if CircleTriangleCollide(V(60, 0), 9.99, tri) {
		t.Error("circle short of the rear edge should not collide")
	}

	// Beyond the rear-left corner: nearest point is the endpoint (70,-10),
	// not the infinite line through the rear edge.
	if CircleTriangleCollide(V(70, -25), 10, tri) {
		t.Error("circle past segment end should not collide via the infinite line")
	}
	if !CircleTriangleCollide(V(70, -20), 10, tri) {
		t.Error("circle touching the corner should collide")
	}
}

func TestCircleTriangleCollideDegenerateTriangle(t *testing.T) {
	p := V(5, 5)
	tri := [3]Vec2{p, p, p}
	if CircleTriangleCollide(V(5, 5), 3, tri) {
		t.Error("fully degenerate triangle has no edges and should not collide")
	}

	// Two coincident vertices: remaining edges still work.
	tri = [3]Vec2{V(0, 0), V(0, 0), V(10, 0)}
	if !CircleTriangleCollide(V(5, 2), 2, tri) {
		t.Error("non-degenerate edge of a partially degenerate triangle should collide")
	}
}

func TestVecRotatePreservesLength(t *testing.T) {
	v := V(-10, 10)
	for _, angle := range []float64{0, 0.3, math.Pi / 2, math.Pi, 4.2, -7.5, 100} {
		got := v.Rotate(angle).Len()
		if math.Abs(got-v.Len()) > 1e-9 {
			t.Errorf("rotate(%v): length %v, want %v", angle, got, v.Len())
		}
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 3)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-3) > 1e-12 {
		t.Errorf("FromAngle(pi/2, 3) = %+v, want (0,3)", v)
	}
}
