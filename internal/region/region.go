// Package region implements boolean containment regions: circle, rectangle and
// polygon primitives plus the infinite plane, combined with union, intersection
// and difference. Regions are immutable expression trees; combining two regions
// builds a new tree that shares the operands, so a region may appear as the
// child of several composites and must never be mutated after construction.
package region

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"sprite-engine/internal/primitives"
)

// Op is the boolean operator of a composite region.
type Op int

const (
	opLeaf Op = iota
	OpUnion
	OpIntersect
	OpDifference
)

type primKind int

const (
	primNone primKind = iota
	primCircle
	primRect
	primPath
)

// circlePathSegments controls the polygon resolution of a circle's outline path.
// The outline is used for drawing only; containment tests use the exact radius.
const circlePathSegments = 16

// Region tests point membership. The zero value is the empty region (contains
// nothing); use the constructors instead.
type Region struct {
	inverted bool
	infinite bool

	kind   primKind
	radius float32
	size   rl.Vector2
	pts    []rl.Vector2

	op          Op
	left, right *Region

	// path is the approximate outline used for drawing. For composites it is
	// only a rough combination of the operands' paths; containment stays exact.
	path []rl.Vector2
}

// Infinite returns the region containing every point.
func Infinite() *Region {
	return &Region{infinite: true}
}

// Circle returns the region inside a circle of the given radius centered on the
// origin.
func Circle(radius float32) *Region {
	r := &Region{kind: primCircle, radius: radius}
	r.path = circleOutline(radius)
	return r
}

// Rect returns the region inside a rectangle of the given size centered on the
// origin.
func Rect(size rl.Vector2) *Region {
	bounds := primitives.RectFromCenter(rl.Vector2{}, size)
	r := &Region{kind: primRect, size: size}
	r.path = rectOutline(bounds)
	return r
}

// Path returns the region inside the closed polygon described by pts, tested
// with the even-odd rule. The points are copied.
func Path(pts []rl.Vector2) *Region {
	cp := make([]rl.Vector2, len(pts))
	copy(cp, pts)
	return &Region{kind: primPath, pts: cp, path: cp}
}

// Contains reports whether p lies inside the region.
func (r *Region) Contains(p rl.Vector2) bool {
	switch {
	case r.op == OpUnion:
		return r.left.Contains(p) || r.right.Contains(p)
	case r.op == OpIntersect:
		return r.left.Contains(p) && r.right.Contains(p)
	case r.op == OpDifference:
		return r.left.Contains(p) && !r.right.Contains(p)
	case r.infinite:
		return !r.inverted
	case r.kind == primNone:
		// An empty primitive contains nothing; inverted, it contains everything.
		return r.inverted
	default:
		inside := r.rawContains(p)
		if r.inverted {
			return !inside
		}
		return inside
	}
}

// rawContains tests the primitive shape ignoring the inverted flag.
func (r *Region) rawContains(p rl.Vector2) bool {
	switch r.kind {
	case primCircle:
		return p.X*p.X+p.Y*p.Y <= r.radius*r.radius
	case primRect:
		return primitives.RectContains(primitives.RectFromCenter(rl.Vector2{}, r.size), p)
	case primPath:
		return pointInPolygon(r.pts, p)
	}
	return false
}

// Inverse returns the complement of the region. Primitives and the infinite
// region flip their inverted flag; composites rewrite by De Morgan:
//
//	!(A | B) = !A & !B
//	!(A & B) = !A | !B
//	!(A - B) = !A | B
//
// In the difference case B keeps its orientation; inverting it as well would
// undo the subtraction it already encodes.
func (r *Region) Inverse() *Region {
	switch r.op {
	case OpUnion:
		return r.left.Inverse().Intersection(r.right.Inverse())
	case OpIntersect:
		return r.left.Inverse().Union(r.right.Inverse())
	case OpDifference:
		return r.left.Inverse().Union(r.right)
	}
	flipped := *r
	flipped.inverted = !r.inverted
	return &flipped
}

// Union returns the region containing points in either r or other.
// The combined outline simply concatenates both outlines.
func (r *Region) Union(other *Region) *Region {
	path := make([]rl.Vector2, 0, len(r.path)+len(other.path))
	path = append(path, r.path...)
	path = append(path, other.path...)
	if len(path) == 0 {
		path = nil
	}
	return &Region{op: OpUnion, left: r, right: other, path: path}
}

// Intersection returns the region containing points in both r and other. The
// combined outline is approximated by the overlap of the two outlines' bounding
// boxes; when the boxes are disjoint the composite has no outline at all, even
// though Contains keeps evaluating the exact formula.
func (r *Region) Intersection(other *Region) *Region {
	out := &Region{op: OpIntersect, left: r, right: other}
	ra, okA := pathBounds(r.path)
	rb, okB := pathBounds(other.path)
	if okA && okB && rl.CheckCollisionRecs(ra, rb) {
		out.path = rectOutline(rl.GetCollisionRec(ra, rb))
	}
	return out
}

// Difference returns the region containing points in r but not in other. The
// outline keeps r's outline verbatim; the hole is not cut out of it.
func (r *Region) Difference(other *Region) *Region {
	return &Region{op: OpDifference, left: r, right: other, path: r.path}
}

// Path returns the approximate outline of the region for drawing, or nil when
// the region has none (infinite regions, empty primitives, disjoint
// intersections). The slice is shared; callers must not modify it.
func (r *Region) Path() []rl.Vector2 {
	return r.path
}

// circleOutline approximates a circle of the given radius as a closed polygon.
func circleOutline(radius float32) []rl.Vector2 {
	if radius <= 0 {
		return nil
	}
	pts := make([]rl.Vector2, circlePathSegments)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / circlePathSegments
		pts[i] = rl.NewVector2(radius*math32.Cos(a), radius*math32.Sin(a))
	}
	return pts
}

// rectOutline returns the four corners of rect in order.
func rectOutline(rect rl.Rectangle) []rl.Vector2 {
	return []rl.Vector2{
		{X: rect.X, Y: rect.Y},
		{X: rect.X + rect.Width, Y: rect.Y},
		{X: rect.X + rect.Width, Y: rect.Y + rect.Height},
		{X: rect.X, Y: rect.Y + rect.Height},
	}
}

// pathBounds returns the bounding box of an outline, or ok=false for an empty
// outline.
func pathBounds(pts []rl.Vector2) (rl.Rectangle, bool) {
	if len(pts) == 0 {
		return rl.Rectangle{}, false
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math32.Min(minX, p.X)
		minY = math32.Min(minY, p.Y)
		maxX = math32.Max(maxX, p.X)
		maxY = math32.Max(maxY, p.Y)
	}
	return rl.NewRectangle(minX, minY, maxX-minX, maxY-minY), true
}

// pointInPolygon reports whether p is inside the closed polygon pts using the
// even-odd crossing rule. Points exactly on an edge may land on either side.
func pointInPolygon(pts []rl.Vector2, p rl.Vector2) bool {
	if len(pts) < 3 {
		return false
	}
	inside := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
