package region

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePoints covers the plane widely enough that containment equivalences
// checked against it are convincing.
var samplePoints = []rl.Vector2{
	{X: 0, Y: 0}, {X: 1, Y: 1}, {X: -3, Y: 2}, {X: 5, Y: 0}, {X: 0, Y: -5},
	{X: 10, Y: 10}, {X: -10, Y: -10}, {X: 2.5, Y: -0.5}, {X: 100, Y: 0},
	{X: -7, Y: 7}, {X: 4, Y: 3}, {X: -4, Y: -3},
}

func TestCircleContainment(t *testing.T) {
	r := Circle(5)
	assert.True(t, r.Contains(rl.NewVector2(3, 4)), "boundary is inclusive")
	assert.False(t, r.Contains(rl.NewVector2(3, 4.01)))
	assert.True(t, r.Contains(rl.NewVector2(0, 0)))
}

func TestRectContainment(t *testing.T) {
	r := Rect(rl.NewVector2(4, 2))
	assert.True(t, r.Contains(rl.NewVector2(2, 1)))
	assert.True(t, r.Contains(rl.NewVector2(-2, -1)))
	assert.False(t, r.Contains(rl.NewVector2(2.1, 0)))
}

func TestPathContainment(t *testing.T) {
	triangle := Path([]rl.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}})
	assert.True(t, triangle.Contains(rl.NewVector2(5, 3)))
	assert.False(t, triangle.Contains(rl.NewVector2(0, 5)))
	assert.False(t, triangle.Contains(rl.NewVector2(-1, -1)))
}

func TestInfiniteContainsEverything(t *testing.T) {
	inf := Infinite()
	for _, p := range samplePoints {
		assert.True(t, inf.Contains(p))
		assert.False(t, inf.Inverse().Contains(p))
	}
}

func TestEmptyPrimitiveContainsNothingUntilInverted(t *testing.T) {
	empty := &Region{}
	for _, p := range samplePoints {
		assert.False(t, empty.Contains(p))
		assert.True(t, empty.Inverse().Contains(p))
	}
}

func TestDoubleInversionIsIdentityOnContainment(t *testing.T) {
	regions := []*Region{
		Circle(5),
		Rect(rl.NewVector2(6, 4)),
		Circle(5).Union(Rect(rl.NewVector2(6, 4))),
		Circle(5).Intersection(Rect(rl.NewVector2(20, 20))),
		Circle(8).Difference(Circle(3)),
		Infinite().Difference(Circle(4)),
	}
	for _, r := range regions {
		rr := r.Inverse().Inverse()
		for _, p := range samplePoints {
			assert.Equal(t, r.Contains(p), rr.Contains(p))
		}
	}
}

func TestDeMorganUnion(t *testing.T) {
	a := Circle(5)
	b := Rect(rl.NewVector2(8, 8))
	lhs := a.Union(b).Inverse()
	rhs := a.Inverse().Intersection(b.Inverse())
	for _, p := range samplePoints {
		assert.Equal(t, rhs.Contains(p), lhs.Contains(p))
	}
}

func TestDeMorganDifference(t *testing.T) {
	a := Circle(6)
	b := Circle(2)
	// !(A - B) = !A | B, with B keeping its orientation.
	lhs := a.Difference(b).Inverse()
	for _, p := range samplePoints {
		want := !a.Contains(p) || b.Contains(p)
		assert.Equal(t, want, lhs.Contains(p))
	}
}

func TestUnionPathConcatenates(t *testing.T) {
	a := Rect(rl.NewVector2(2, 2))
	b := Rect(rl.NewVector2(4, 4))
	u := a.Union(b)
	assert.Len(t, u.Path(), len(a.Path())+len(b.Path()))
}

func TestIntersectionPathIsBoundsOverlap(t *testing.T) {
	a := Rect(rl.NewVector2(4, 4))
	shifted := Path([]rl.Vector2{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 5}, {X: 1, Y: 5}})
	isect := a.Intersection(shifted)
	pts := isect.Path()
	require.Len(t, pts, 4)
	// Overlap of [-2,2]² and [1,5]² is [1,2]².
	assert.Equal(t, rl.NewVector2(1, 1), pts[0])
	assert.Equal(t, rl.NewVector2(2, 2), pts[2])
}

func TestDisjointIntersectionHasNoPathButExactContainment(t *testing.T) {
	a := Rect(rl.NewVector2(2, 2))
	far := Path([]rl.Vector2{{X: 100, Y: 100}, {X: 104, Y: 100}, {X: 102, Y: 104}})
	isect := a.Intersection(far)
	assert.Nil(t, isect.Path())
	// Containment still follows the recursive formula: nothing is in both.
	for _, p := range samplePoints {
		assert.False(t, isect.Contains(p))
	}
	assert.False(t, isect.Contains(rl.NewVector2(102, 101)))
}

func TestDifferencePathKeepsLeftOutline(t *testing.T) {
	a := Circle(5)
	d := a.Difference(Circle(1))
	assert.Equal(t, a.Path(), d.Path())
	assert.True(t, d.Contains(rl.NewVector2(3, 0)))
	assert.False(t, d.Contains(rl.NewVector2(0.5, 0)), "subtracted hole")
}

func TestCompositesShareChildren(t *testing.T) {
	shared := Circle(3)
	u := shared.Union(Rect(rl.NewVector2(2, 2)))
	d := Infinite().Difference(shared)
	// Reusing shared in two trees must not change either result.
	assert.True(t, u.Contains(rl.NewVector2(0, 2)))
	assert.False(t, d.Contains(rl.NewVector2(0, 2)))
	assert.True(t, d.Contains(rl.NewVector2(10, 10)))
}
