package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// JointKind enumerates the supported joint flavors. This core only stores
// joints; solving their constraints is the external solver's job.
type JointKind int

const (
	JointPin JointKind = iota
	JointFixed
	JointSpring
	JointSliding
	JointLimit
)

// Joint connects two bodies at anchor points given in world space.
type Joint struct {
	Kind             JointKind
	BodyA, BodyB     *Body
	AnchorA, AnchorB rl.Vector2
}

// NewJoint returns a joint of the given kind anchored at a single world point.
func NewJoint(kind JointKind, a, b *Body, anchor rl.Vector2) *Joint {
	return &Joint{Kind: kind, BodyA: a, BodyB: b, AnchorA: anchor, AnchorB: anchor}
}

// AddJoint appends j to the world's joint list. Adding a joint twice or adding
// nil is ignored.
func (w *World) AddJoint(j *Joint) {
	if j == nil {
		return
	}
	for _, existing := range w.joints {
		if existing == j {
			return
		}
	}
	w.joints = append(w.joints, j)
}

// RemoveJoint removes j from the world's joint list, comparing by identity.
func (w *World) RemoveJoint(j *Joint) {
	for i, existing := range w.joints {
		if existing == j {
			w.joints = append(w.joints[:i], w.joints[i+1:]...)
			return
		}
	}
}

// RemoveAllJoints clears the joint list.
func (w *World) RemoveAllJoints() {
	w.joints = nil
}

// Joints returns the world's joints in insertion order. The slice is the
// world's own; callers must not modify it.
func (w *World) Joints() []*Joint {
	return w.joints
}
