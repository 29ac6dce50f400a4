package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"sprite-engine/internal/region"
)

// FieldEvaluator computes the force a field applies to a probe. delta is the
// probe's position relative to the field's origin. Evaluators must be pure so
// sampling stays deterministic.
type FieldEvaluator func(delta rl.Vector2, strength, falloff float32) rl.Vector2

// Field is a force field: an evaluator plus the region it applies in (nil means
// everywhere), with strength and falloff passed through to the evaluator. The
// region is tested in field-local space, like the evaluator's delta.
type Field struct {
	Evaluator FieldEvaluator
	Region    *region.Region
	Strength  float32
	Falloff   float32
}

// LinearGravityField pushes every probe along dir regardless of distance.
func LinearGravityField(dir rl.Vector2) FieldEvaluator {
	unit := rl.Vector2Normalize(dir)
	return func(_ rl.Vector2, strength, _ float32) rl.Vector2 {
		return rl.Vector2Scale(unit, strength)
	}
}

// RadialGravityField pulls probes toward the field origin, attenuated by
// strength/(1+falloff·distance). A probe exactly on the origin feels no force.
func RadialGravityField() FieldEvaluator {
	return func(delta rl.Vector2, strength, falloff float32) rl.Vector2 {
		d := math32.Hypot(delta.X, delta.Y)
		if d == 0 {
			return rl.Vector2{}
		}
		mag := strength / (1 + falloff*d)
		return rl.Vector2Scale(delta, -mag/d)
	}
}

// VortexField pushes probes perpendicular to the origin direction, giving a
// swirl around the field origin with the same attenuation as radial gravity.
func VortexField() FieldEvaluator {
	return func(delta rl.Vector2, strength, falloff float32) rl.Vector2 {
		d := math32.Hypot(delta.X, delta.Y)
		if d == 0 {
			return rl.Vector2{}
		}
		mag := strength / (1 + falloff*d)
		return rl.Vector2Scale(rl.NewVector2(-delta.Y, delta.X), mag/d)
	}
}

// SampleFields sums the force of every field in the world's field source at
// the world-space position. Fields whose region does not contain the position
// contribute nothing. With no source or no fields the result is the exact zero
// vector. Plain vector addition, so summation order does not matter.
func (w *World) SampleFields(position rl.Vector2) rl.Vector2 {
	var total rl.Vector2
	if w.fields == nil {
		return total
	}
	w.fields.EachField(func(f Field, origin rl.Vector2) bool {
		if f.Evaluator == nil {
			return true
		}
		delta := rl.Vector2Subtract(position, origin)
		if f.Region != nil && !f.Region.Contains(delta) {
			return true
		}
		total = rl.Vector2Add(total, f.Evaluator(delta, f.Strength, f.Falloff))
		return true
	})
	return total
}
