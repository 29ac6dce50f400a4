package scene

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprite-engine/internal/physics"
)

func TestWalkIsDepthFirstPreOrder(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	d := NewNode("d")
	root.AddChild(a)
	a.AddChild(b)
	a.AddChild(c)
	root.AddChild(d)

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return true
	})
	assert.Equal(t, []string{"root", "a", "b", "c", "d"}, names)
}

func TestWalkEarlyStop(t *testing.T) {
	root := NewNode("root")
	root.AddChild(NewNode("a"))
	root.AddChild(NewNode("b"))

	var names []string
	done := root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n.Name != "a"
	})
	assert.False(t, done)
	assert.Equal(t, []string{"root", "a"}, names)
}

func TestWorldPositionComposesAncestors(t *testing.T) {
	root := NewNode("root")
	root.Position = rl.NewVector2(10, 0)
	mid := NewNode("mid")
	mid.Position = rl.NewVector2(0, 5)
	leaf := NewNode("leaf")
	leaf.Position = rl.NewVector2(1, 1)
	root.AddChild(mid)
	mid.AddChild(leaf)

	assert.Equal(t, rl.NewVector2(11, 6), leaf.WorldPosition())
}

func TestRemoveFromParent(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)
	require.Len(t, root.Children(), 1)

	child.RemoveFromParent()
	assert.Empty(t, root.Children())
	assert.Nil(t, child.Parent())
}

func TestReparentingMovesNode(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	child := NewNode("child")
	a.AddChild(child)
	b.AddChild(child)

	assert.Empty(t, a.Children())
	assert.Equal(t, []*Node{child}, b.Children())
	assert.Same(t, b, child.Parent())
}

func TestAttachBodySetsBackReference(t *testing.T) {
	n := NewNode("n")
	b := physics.NewBody(physics.CircleShape(3))
	n.AttachBody(b)
	assert.Same(t, n, b.UserData)
}

func TestSceneQueriesFollowTreeOrder(t *testing.T) {
	s := New()
	first := NewNode("first")
	first.AttachBody(physics.NewBody(physics.CircleShape(5)))
	second := NewNode("second")
	second.AttachBody(physics.NewBody(physics.CircleShape(5)))
	s.Root.AddChild(first)
	s.Root.AddChild(second)

	// Both bodies contain the origin; pre-order picks the first, every time.
	for i := 0; i < 5; i++ {
		got := s.World.FirstBodyAtPoint(rl.NewVector2(0, 0))
		require.NotNil(t, got)
		assert.Same(t, first.Body, got)
	}
}

func TestDetachedSceneQueriesAreEmpty(t *testing.T) {
	s := New()
	n := NewNode("n")
	n.AttachBody(physics.NewBody(physics.CircleShape(5)))
	s.Root.AddChild(n)

	require.NotNil(t, s.World.FirstBodyAtPoint(rl.NewVector2(0, 0)))
	s.Detach()
	assert.Nil(t, s.World.FirstBodyAtPoint(rl.NewVector2(0, 0)))
}

func TestSceneContactsThroughTree(t *testing.T) {
	s := New()
	a := NewNode("a")
	a.AttachBody(physics.NewBody(physics.CircleShape(5)))
	b := NewNode("b")
	b.Position = rl.NewVector2(6, 0)
	b.AttachBody(physics.NewBody(physics.CircleShape(5)))
	s.Root.AddChild(a)
	s.Root.AddChild(b)

	var begun, ended int
	s.World.Delegate = &countingDelegate{begin: &begun, end: &ended}

	s.World.Step(1.0 / 60)
	assert.Equal(t, 1, begun)

	b.Position = rl.NewVector2(100, 0)
	s.World.Step(1.0 / 60)
	assert.Equal(t, 1, ended)
}

type countingDelegate struct {
	physics.NoopContactDelegate
	begin, end *int
}

func (d *countingDelegate) OnContactBegin(*physics.Contact) { *d.begin++ }
func (d *countingDelegate) OnContactEnd(*physics.Contact)   { *d.end++ }
