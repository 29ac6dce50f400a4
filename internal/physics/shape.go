package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"sprite-engine/internal/primitives"
)

// ShapeKind enumerates the closed set of body shapes. Geometry (AABB,
// containment) is defined per kind with exhaustive switches rather than through
// an open interface, so all of it stays in this file.
type ShapeKind int

const (
	// ShapeCircle is a circle of Radius centered on the owner's position.
	ShapeCircle ShapeKind = iota
	// ShapeCircleOffset is a circle of Radius centered on position + Center.
	ShapeCircleOffset
	// ShapeRect is a rectangle of Size centered on the owner's position.
	ShapeRect
	// ShapeRectOffset is a rectangle of Size centered on position + Center.
	ShapeRectOffset
	// ShapeEdgeLoopRect is the hollow rectangular boundary Loop, in local space.
	ShapeEdgeLoopRect
	// ShapeEdge is the segment From→To in local space.
	ShapeEdge
	// ShapeOther is an arbitrary shape known only by its area; it is
	// approximated by a square of side sqrt(area) centered on the position.
	ShapeOther
)

// Shape describes a body's geometric extent in its owner node's local space.
// Shapes are immutable values; only the fields relevant to Kind are set.
type Shape struct {
	Kind     ShapeKind
	Radius   float32
	Center   rl.Vector2
	Size     rl.Vector2
	Loop     rl.Rectangle
	From, To rl.Vector2
}

// CircleShape returns a circle shape centered on the owner.
func CircleShape(radius float32) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// CircleShapeAt returns a circle shape offset from the owner by center.
func CircleShapeAt(radius float32, center rl.Vector2) Shape {
	return Shape{Kind: ShapeCircleOffset, Radius: radius, Center: center}
}

// RectShape returns a rectangle shape centered on the owner.
func RectShape(size rl.Vector2) Shape {
	return Shape{Kind: ShapeRect, Size: size}
}

// RectShapeAt returns a rectangle shape offset from the owner by center.
func RectShapeAt(size, center rl.Vector2) Shape {
	return Shape{Kind: ShapeRectOffset, Size: size, Center: center}
}

// EdgeLoopShape returns the hollow boundary of rect in the owner's local space.
func EdgeLoopShape(rect rl.Rectangle) Shape {
	return Shape{Kind: ShapeEdgeLoopRect, Loop: rect}
}

// EdgeShape returns the segment from→to in the owner's local space.
func EdgeShape(from, to rl.Vector2) Shape {
	return Shape{Kind: ShapeEdge, From: from, To: to}
}

// OtherShape returns the bounding-square fallback shape; the square's side comes
// from the owning body's Area.
func OtherShape() Shape {
	return Shape{Kind: ShapeOther}
}

// AABB returns the shape's axis-aligned bounding box when its owner sits at
// origin. area is consulted only by ShapeOther.
func (s Shape) AABB(origin rl.Vector2, area float32) rl.Rectangle {
	switch s.Kind {
	case ShapeCircle:
		return primitives.RectFromCenter(origin, rl.NewVector2(s.Radius*2, s.Radius*2))
	case ShapeCircleOffset:
		c := rl.Vector2Add(origin, s.Center)
		return primitives.RectFromCenter(c, rl.NewVector2(s.Radius*2, s.Radius*2))
	case ShapeRect:
		return primitives.RectFromCenter(origin, s.Size)
	case ShapeRectOffset:
		return primitives.RectFromCenter(rl.Vector2Add(origin, s.Center), s.Size)
	case ShapeEdgeLoopRect:
		return primitives.RectOffset(s.Loop, origin)
	case ShapeEdge:
		return primitives.RectFromPoints(rl.Vector2Add(origin, s.From), rl.Vector2Add(origin, s.To))
	case ShapeOther:
		side := math32.Sqrt(math32.Max(area, 0))
		return primitives.RectFromCenter(origin, rl.NewVector2(side, side))
	}
	return rl.Rectangle{}
}

// Contains reports whether the shape, with its owner at origin, contains p.
// Circle kinds compare squared distance against the squared radius, boundary
// inclusive. Rect kinds test the positioned rectangle exactly. Every other kind
// falls back to AABB containment, which overreports for edges and arbitrary
// shapes. Degenerate sizes degrade to containing only their boundary line.
func (s Shape) Contains(origin, p rl.Vector2, area float32) bool {
	switch s.Kind {
	case ShapeCircle:
		return circleContains(origin, s.Radius, p)
	case ShapeCircleOffset:
		return circleContains(rl.Vector2Add(origin, s.Center), s.Radius, p)
	case ShapeRect:
		return primitives.RectContains(primitives.RectFromCenter(origin, s.Size), p)
	case ShapeRectOffset:
		c := rl.Vector2Add(origin, s.Center)
		return primitives.RectContains(primitives.RectFromCenter(c, s.Size), p)
	default:
		return primitives.RectContains(s.AABB(origin, area), p)
	}
}

func circleContains(center rl.Vector2, radius float32, p rl.Vector2) bool {
	d := rl.Vector2Subtract(p, center)
	return d.X*d.X+d.Y*d.Y <= radius*radius
}

// area returns the default area for a shape, used when a body is built without
// an explicit one. Edges have no interior.
func (s Shape) area() float32 {
	switch s.Kind {
	case ShapeCircle, ShapeCircleOffset:
		return math32.Pi * s.Radius * s.Radius
	case ShapeRect, ShapeRectOffset:
		return s.Size.X * s.Size.Y
	default:
		return 0
	}
}
