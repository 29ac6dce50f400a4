// Package scene provides the 2D node tree the physics world walks: nodes with
// local positions, optional physics bodies and force fields, composed into a
// Scene that serves as the world's body and field source.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"sprite-engine/internal/physics"
)

// Node is a scene-graph node. Position is local to the parent; a node may carry
// at most one physics body and one force field. Children are walked in
// insertion order.
type Node struct {
	Name     string
	Position rl.Vector2
	Body     *physics.Body
	Field    *physics.Field

	parent   *Node
	children []*Node
}

// NewNode returns a detached node at the local origin.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// AddChild appends child to n, detaching it from any previous parent first.
// Adding a node to itself is ignored.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.RemoveFromParent()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveFromParent detaches n from its parent, if any.
func (n *Node) RemoveFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order. The slice is the
// node's own; callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// Walk visits n and its descendants depth-first in pre-order, the fixed
// traversal order all physics queries rely on. fn returns false to stop the
// walk; Walk reports whether the walk ran to completion.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// WorldPosition returns the node's position in scene space, the sum of local
// positions up to the root.
func (n *Node) WorldPosition() rl.Vector2 {
	pos := n.Position
	for p := n.parent; p != nil; p = p.parent {
		pos = rl.Vector2Add(pos, p.Position)
	}
	return pos
}

// AttachBody gives n the body and points the body's UserData back at n. The
// back-reference is a relation only; the body does not own the node.
func (n *Node) AttachBody(b *physics.Body) {
	n.Body = b
	if b != nil {
		b.UserData = n
	}
}

// Scene owns a root node and the physics world that queries it. The scene is
// the world's body and field source; detaching leaves the world answering
// every query with the empty result.
type Scene struct {
	Root  *Node
	World *physics.World
}

// New returns a scene with an empty root node and an attached physics world.
func New() *Scene {
	s := &Scene{
		Root:  NewNode("root"),
		World: physics.NewWorld(),
	}
	s.World.Attach(s, s)
	return s
}

// Detach disconnects the scene's world from the scene.
func (s *Scene) Detach() {
	s.World.Detach()
}

// EachBody yields every body in the tree with its owner's world position, in
// depth-first pre-order. Implements physics.BodySource.
func (s *Scene) EachBody(fn func(b *physics.Body, origin rl.Vector2) bool) {
	s.Root.Walk(func(n *Node) bool {
		if n.Body == nil {
			return true
		}
		return fn(n.Body, n.WorldPosition())
	})
}

// EachField yields every force field in the tree with its owner's world
// position, in depth-first pre-order. Implements physics.FieldSource.
func (s *Scene) EachField(fn func(f physics.Field, origin rl.Vector2) bool) {
	s.Root.Walk(func(n *Node) bool {
		if n.Field == nil {
			return true
		}
		return fn(*n.Field, n.WorldPosition())
	})
}
