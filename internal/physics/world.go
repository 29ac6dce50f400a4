package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"sprite-engine/internal/primitives"
)

// BodySource enumerates the bodies a world can see, yielding each body with its
// owner's world position. Enumeration must be depth-first pre-order over the
// owning tree so point and rect queries stay deterministic; returning false
// from fn stops the walk. The scene package implements this.
type BodySource interface {
	EachBody(fn func(b *Body, origin rl.Vector2) bool)
}

// FieldSource enumerates force fields with their world origins. Returning false
// from fn stops the walk.
type FieldSource interface {
	EachField(fn func(f Field, origin rl.Vector2) bool)
}

// World is the physics facade owned by one scene: gravity and speed settings, a
// joint list, the frame-over-frame contact state, and the query API over
// whatever BodySource is attached. A world re-walks its source on every query
// and every step rather than caching bodies, so nodes removed between frames
// are simply never seen again. Not safe for concurrent use; everything here
// runs on the scene's single simulation goroutine.
type World struct {
	Gravity  rl.Vector2
	Speed    float32
	Delegate ContactDelegate

	bodies BodySource
	fields FieldSource
	joints []*Joint

	contacts contactState
}

// NewWorld returns a detached world with gravity (0, -9.8) and speed 1.
// Until a source is attached every query returns the empty result.
func NewWorld() *World {
	return &World{
		Gravity:  rl.NewVector2(0, -9.8),
		Speed:    1,
		contacts: newContactState(),
	}
}

// Attach connects the world to its body and field sources. Either may be nil;
// queries against a nil source return empty results rather than failing.
func (w *World) Attach(bodies BodySource, fields FieldSource) {
	w.bodies = bodies
	w.fields = fields
}

// Detach disconnects the world from its sources.
func (w *World) Detach() {
	w.bodies = nil
	w.fields = nil
}

// EnumerateBodiesAtPoint calls fn for every body containing p, in the source's
// traversal order. fn returns false to stop early.
func (w *World) EnumerateBodiesAtPoint(p rl.Vector2, fn func(b *Body) bool) {
	if w.bodies == nil {
		return
	}
	w.bodies.EachBody(func(b *Body, origin rl.Vector2) bool {
		if !b.ContainsPoint(origin, p) {
			return true
		}
		return fn(b)
	})
}

// EnumerateBodiesInRect calls fn for every body whose AABB intersects rect, in
// the source's traversal order. fn returns false to stop early.
func (w *World) EnumerateBodiesInRect(rect rl.Rectangle, fn func(b *Body) bool) {
	if w.bodies == nil {
		return
	}
	w.bodies.EachBody(func(b *Body, origin rl.Vector2) bool {
		if !rl.CheckCollisionRecs(b.AABB(origin), rect) {
			return true
		}
		return fn(b)
	})
}

// EnumerateBodiesAlongRay calls fn for every body whose AABB the segment
// start→end crosses, with the entry point and face normal of each hit. Hits
// arrive in traversal order, not by distance; only FirstBodyAlongRay sorts.
// fn returns false to stop early.
func (w *World) EnumerateBodiesAlongRay(start, end rl.Vector2, fn func(b *Body, point, normal rl.Vector2) bool) {
	if w.bodies == nil {
		return
	}
	w.bodies.EachBody(func(b *Body, origin rl.Vector2) bool {
		point, normal, ok := primitives.RayRect(start, end, b.AABB(origin))
		if !ok {
			return true
		}
		return fn(b, point, normal)
	})
}

// FirstBodyAtPoint returns the first body in traversal order containing p, or
// nil. Deterministic for an unmodified tree.
func (w *World) FirstBodyAtPoint(p rl.Vector2) *Body {
	var found *Body
	w.EnumerateBodiesAtPoint(p, func(b *Body) bool {
		found = b
		return false
	})
	return found
}

// FirstBodyInRect returns the first body in traversal order whose AABB
// intersects rect, or nil.
func (w *World) FirstBodyInRect(rect rl.Rectangle) *Body {
	var found *Body
	w.EnumerateBodiesInRect(rect, func(b *Body) bool {
		found = b
		return false
	})
	return found
}

// FirstBodyAlongRay returns the body whose hit point lies nearest to start
// along the segment start→end, with that hit point and normal. Returns nil
// when nothing is hit.
func (w *World) FirstBodyAlongRay(start, end rl.Vector2) (*Body, rl.Vector2, rl.Vector2) {
	var (
		found        *Body
		bestPoint    rl.Vector2
		bestNormal   rl.Vector2
		bestDistance float32
	)
	w.EnumerateBodiesAlongRay(start, end, func(b *Body, point, normal rl.Vector2) bool {
		d := rl.Vector2LengthSqr(rl.Vector2Subtract(point, start))
		if found == nil || d < bestDistance {
			found, bestPoint, bestNormal, bestDistance = b, point, normal, d
		}
		return true
	})
	return found, bestPoint, bestNormal
}

// ResetContactState forgets all active, previous and cached contacts without
// dispatching end events. Call after removing bodies in bulk.
func (w *World) ResetContactState() {
	w.contacts.reset()
}

// Step runs one simulation frame: collect every body from the source, test all
// pairs for overlap, then diff against the previous frame's contact set and
// notify the delegate. A speed of zero pauses the simulation entirely. dt is
// accepted for symmetry with the render loop; this core queries shapes only and
// integrates no motion.
func (w *World) Step(dt float32) {
	if w.Speed == 0 || w.bodies == nil {
		return
	}

	type entry struct {
		body   *Body
		origin rl.Vector2
		aabb   rl.Rectangle
	}
	var entries []entry
	w.bodies.EachBody(func(b *Body, origin rl.Vector2) bool {
		entries = append(entries, entry{body: b, origin: origin, aabb: b.AABB(origin)})
		return true
	})

	var began []*Contact
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if !contactAllowed(a.body, b.body) {
				continue
			}
			if !rl.CheckCollisionRecs(a.aabb, b.aabb) {
				continue
			}
			if !shapesOverlap(a.body, a.origin, b.body, b.origin) {
				continue
			}
			pair, ok := MakePair(a.body, b.body)
			if !ok {
				continue
			}
			c := newContact(a.body, b.body, a.origin, b.origin, rl.GetCollisionRec(a.aabb, b.aabb))
			if w.contacts.observe(pair, c) {
				began = append(began, c)
			}
		}
	}
	ended := w.contacts.rotate()

	// Dispatch from the collected slices, never the live maps: a delegate that
	// removes bodies mid-dispatch must not disturb this frame's bookkeeping.
	if w.Delegate != nil {
		for _, c := range began {
			w.Delegate.OnContactBegin(c)
		}
		for _, c := range ended {
			w.Delegate.OnContactEnd(c)
		}
	}
}

// contactAllowed applies the bitmask filter: a pair produces contact events
// when either body's category intersects the other's contact test mask.
func contactAllowed(a, b *Body) bool {
	return a.Category&b.ContactTestMask != 0 || b.Category&a.ContactTestMask != 0
}

// shapesOverlap refines an AABB overlap for the shape pairs with exact tests:
// circle/circle by squared center distance, circle/rect by circle-rectangle
// collision. Everything else keeps the AABB answer.
func shapesOverlap(a *Body, originA rl.Vector2, b *Body, originB rl.Vector2) bool {
	ca, ra, aIsCircle := bodyCircle(a, originA)
	cb, rb, bIsCircle := bodyCircle(b, originB)
	switch {
	case aIsCircle && bIsCircle:
		d := rl.Vector2Subtract(cb, ca)
		sum := ra + rb
		return d.X*d.X+d.Y*d.Y <= sum*sum
	case aIsCircle:
		return rl.CheckCollisionCircleRec(ca, ra, b.AABB(originB))
	case bIsCircle:
		return rl.CheckCollisionCircleRec(cb, rb, a.AABB(originA))
	default:
		return true
	}
}

// bodyCircle returns the world-space center and radius for circle-kind bodies.
func bodyCircle(b *Body, origin rl.Vector2) (rl.Vector2, float32, bool) {
	switch b.Shape.Kind {
	case ShapeCircle:
		return origin, b.Shape.Radius, true
	case ShapeCircleOffset:
		return rl.Vector2Add(origin, b.Shape.Center), b.Shape.Radius, true
	}
	return rl.Vector2{}, 0, false
}

// newContact builds the contact for an overlapping pair: point at the center of
// the AABB overlap, normal from A's origin toward B's (falling back to (0, 1)
// for coincident origins). Impulse stays zero; this core runs no solver.
func newContact(a, b *Body, originA, originB rl.Vector2, overlap rl.Rectangle) *Contact {
	normal := rl.Vector2Subtract(originB, originA)
	if normal.X == 0 && normal.Y == 0 {
		normal = rl.NewVector2(0, 1)
	} else {
		normal = rl.Vector2Normalize(normal)
	}
	return &Contact{
		BodyA:  a,
		BodyB:  b,
		Point:  primitives.RectCenter(overlap),
		Normal: normal,
	}
}
