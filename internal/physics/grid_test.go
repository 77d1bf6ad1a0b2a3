package physics

import (
	"math/rand"
	"sort"
	"testing"
)

func TestSpatialGridFindsNeighbors(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(V(5, 5), 0)
	g.Insert(V(14, 5), 1)
	g.Insert(V(55, 55), 2)

	var found []int
	g.QueryAround(V(8, 8), func(i int) bool {
		found = append(found, i)
		return false
	})
	sort.Ints(found)

	if len(found) != 2 || found[0] != 0 || found[1] != 1 {
		t.Fatalf("QueryAround found %v, want [0 1]", found)
	}
}

func TestSpatialGridDoesNotWrap(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(V(95, 5), 0)

	hit := false
	g.QueryAround(V(2, 5), func(int) bool {
		hit = true
		return true
	})
	if hit {
		t.Error("query at the left edge should not see items at the right edge")
	}
}

func TestSpatialGridClampsOutside(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(V(-30, 50), 0) // clamps into column 0

	hit := false
	g.QueryAround(V(3, 50), func(int) bool {
		hit = true
		return true
	})
	if !hit {
		t.Error("item left of the area should be found from the edge cell")
	}
}

func TestSpatialGridMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const radius = 4.0
	g := NewSpatialGrid(200, 150, radius*2)

	points := make([]Vec2, 300)
	for i := range points {
		points[i] = V(rng.Float64()*240-20, rng.Float64()*190-20)
		g.Insert(points[i], i)
	}

	for i, p := range points {
		want := map[int]bool{}
		for j, q := range points {
			if i != j && CirclesCollide(p, radius, q, radius) {
				want[j] = true
			}
		}

		got := map[int]bool{}
		g.QueryAround(p, func(j int) bool {
			if j != i && CirclesCollide(p, radius, points[j], radius) {
				got[j] = true
			}
			return false
		})

		if len(got) != len(want) {
			t.Fatalf("point %d: grid found %d neighbors, brute force %d", i, len(got), len(want))
		}
		for j := range want {
			if !got[j] {
				t.Fatalf("point %d: grid missed neighbor %d", i, j)
			}
		}
	}
}
