package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// rayEpsilon is the threshold under which a ray's component on an axis is treated
// as parallel to that axis. Parallel axes are tested by containment instead of
// intersection, which is what makes axis-aligned rays at slab boundaries behave
// consistently.
const rayEpsilon = 1e-4

// RayRect intersects the segment from start to end against rect using the slab
// method, clipping the parametric range t in [0,1] against each axis pair of
// planes. On a hit it returns the entry point, the outward normal of the face
// crossed at entry, and true. A segment starting inside the rect reports the
// start point itself with whatever entry normal was recorded before clamping.
func RayRect(start, end rl.Vector2, rect rl.Rectangle) (point, normal rl.Vector2, ok bool) {
	delta := rl.Vector2Subtract(end, start)
	tEnter := math32.Inf(-1)
	tExit := math32.Inf(1)

	// X slab
	if math32.Abs(delta.X) < rayEpsilon {
		if start.X < rect.X || start.X > rect.X+rect.Width {
			return point, normal, false
		}
	} else {
		t1 := (rect.X - start.X) / delta.X
		t2 := (rect.X + rect.Width - start.X) / delta.X
		if near := math32.Min(t1, t2); near > tEnter {
			tEnter = near
			if delta.X > 0 {
				normal = rl.NewVector2(-1, 0)
			} else {
				normal = rl.NewVector2(1, 0)
			}
		}
		tExit = math32.Min(tExit, math32.Max(t1, t2))
	}

	// Y slab
	if math32.Abs(delta.Y) < rayEpsilon {
		if start.Y < rect.Y || start.Y > rect.Y+rect.Height {
			return point, rl.Vector2{}, false
		}
	} else {
		t1 := (rect.Y - start.Y) / delta.Y
		t2 := (rect.Y + rect.Height - start.Y) / delta.Y
		if near := math32.Min(t1, t2); near > tEnter {
			tEnter = near
			if delta.Y > 0 {
				normal = rl.NewVector2(0, -1)
			} else {
				normal = rl.NewVector2(0, 1)
			}
		}
		tExit = math32.Min(tExit, math32.Max(t1, t2))
	}

	if tEnter > tExit || tExit < 0 || tEnter > 1 {
		return point, rl.Vector2{}, false
	}
	t := math32.Max(tEnter, 0)
	point = rl.Vector2Add(start, rl.Vector2Scale(delta, t))
	return point, normal, true
}
