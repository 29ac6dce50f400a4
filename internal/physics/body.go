package physics

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// nextBodyID hands out body identities. Identity, not structural equality, is
// what contact pairs and queries compare.
var nextBodyID atomic.Uint64

// Body is the queryable side of a physics body: a shape, the area backing the
// ShapeOther fallback, and the bitmasks that gate contact events. Motion state
// and collision response belong to the external solver, not here. A body is
// owned by exactly one node; UserData carries that back-reference as a plain
// relation, never ownership.
type Body struct {
	id    uint64
	Shape Shape
	Area  float32

	// Category and ContactTestMask follow the usual bitmask convention: bodies
	// A and B produce contact events when A's category intersects B's contact
	// test mask or vice versa.
	Category        uint32
	ContactTestMask uint32

	UserData any
}

// NewBody returns a body for shape with its default area and all mask bits set.
func NewBody(shape Shape) *Body {
	return &Body{
		id:              nextBodyID.Add(1),
		Shape:           shape,
		Area:            shape.area(),
		Category:        ^uint32(0),
		ContactTestMask: ^uint32(0),
	}
}

// NewOtherBody returns a body for an arbitrary shape known only by its area,
// approximated by a square of side sqrt(area).
func NewOtherBody(area float32) *Body {
	b := NewBody(OtherShape())
	b.Area = area
	return b
}

// ID returns the body's identity, unique for the lifetime of the process.
func (b *Body) ID() uint64 {
	return b.id
}

// AABB returns the body's bounding box with its owner at origin.
func (b *Body) AABB(origin rl.Vector2) rl.Rectangle {
	return b.Shape.AABB(origin, b.Area)
}

// ContainsPoint reports whether the body, with its owner at origin, contains p.
func (b *Body) ContainsPoint(origin, p rl.Vector2) bool {
	return b.Shape.Contains(origin, p, b.Area)
}
