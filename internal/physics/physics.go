// Package physics provides vector math, collision detection and distance utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(p, center Vec2, radius float64) bool {
	return p.DistSquared(center) <= radius*radius
}

// CirclesCollide reports whether two circles touch or overlap.
// Touching circles (distance == ra+rb) collide.
func CirclesCollide(a Vec2, ra float64, b Vec2, rb float64) bool {
	minDist := ra + rb
	return a.DistSquared(b) <= minDist*minDist
}

// ClosestPointOnSegment returns the point of segment a-b nearest to p.
// The whole projected point is clamped to the nearer endpoint when the
// projection falls outside the segment. ok is false for a zero-length segment.
func ClosestPointOnSegment(p, a, b Vec2) (closest Vec2, ok bool) {
	edge := b.Sub(a)
	lenSq := edge.LenSquared()
	if lenSq == 0 {
		return Vec2{}, false
	}

	t := p.Sub(a).Dot(edge) / lenSq
	switch {
	case t < 0:
		return a, true
	case t > 1:
		return b, true
	default:
		return a.Add(edge.Scale(t)), true
	}
}

// CircleTriangleCollide reports whether a circle reaches any edge of the triangle.
// Each edge is a finite segment; a degenerate edge never collides.
// A circle lying strictly inside the triangle without touching an edge does not count.
func CircleTriangleCollide(center Vec2, radius float64, tri [3]Vec2) bool {
	for i := range tri {
		a := tri[i]
		b := tri[(i+1)%len(tri)]

		closest, ok := ClosestPointOnSegment(center, a, b)
		if !ok {
			continue
		}
		if PointInCircle(closest, center, radius) {
			return true
		}
	}
	return false
}
