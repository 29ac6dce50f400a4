package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RectFromCenter returns the rectangle of the given size centered on center.
func RectFromCenter(center, size rl.Vector2) rl.Rectangle {
	return rl.NewRectangle(center.X-size.X*0.5, center.Y-size.Y*0.5, size.X, size.Y)
}

// RectFromPoints returns the smallest rectangle containing both points.
func RectFromPoints(a, b rl.Vector2) rl.Rectangle {
	minX := math32.Min(a.X, b.X)
	minY := math32.Min(a.Y, b.Y)
	return rl.NewRectangle(minX, minY, math32.Abs(a.X-b.X), math32.Abs(a.Y-b.Y))
}

// RectContains reports whether p lies inside rect. All four edges are inclusive,
// so a point exactly on the boundary counts as inside; a zero-size rect contains
// only its own origin.
func RectContains(rect rl.Rectangle, p rl.Vector2) bool {
	return p.X >= rect.X && p.X <= rect.X+rect.Width &&
		p.Y >= rect.Y && p.Y <= rect.Y+rect.Height
}

// RectCenter returns the center point of rect.
func RectCenter(rect rl.Rectangle) rl.Vector2 {
	return rl.NewVector2(rect.X+rect.Width*0.5, rect.Y+rect.Height*0.5)
}

// RectOffset returns rect translated by delta.
func RectOffset(rect rl.Rectangle, delta rl.Vector2) rl.Rectangle {
	return rl.NewRectangle(rect.X+delta.X, rect.Y+delta.Y, rect.Width, rect.Height)
}
