package main

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"sprite-engine/internal/debug"
	"sprite-engine/internal/engineconfig"
	"sprite-engine/internal/graphics"
	"sprite-engine/internal/logger"
	"sprite-engine/internal/physics"
	"sprite-engine/internal/region"
	"sprite-engine/internal/scene"
)

// contactLog forwards contact events to the log file and the stats overlay.
type contactLog struct {
	log *logger.Logger
	dbg *debug.Debug
}

func (c *contactLog) OnContactBegin(ct *physics.Contact) {
	c.dbg.CountContactBegin()
	c.log.Logf("contact begin: %s <-> %s at (%.1f, %.1f)", nodeName(ct.BodyA), nodeName(ct.BodyB), ct.Point.X, ct.Point.Y)
}

func (c *contactLog) OnContactEnd(ct *physics.Contact) {
	c.dbg.CountContactEnd()
	c.log.Logf("contact end: %s <-> %s", nodeName(ct.BodyA), nodeName(ct.BodyB))
}

// nodeName resolves a body's owning node name through its back-reference.
func nodeName(b *physics.Body) string {
	if n, ok := b.UserData.(*scene.Node); ok {
		return n.Name
	}
	return "?"
}

func main() {
	prefs, _ := engineconfig.Load()
	log := logger.New()
	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowStats = prefs.ShowStats
	dbg.ShowMemAlloc = prefs.ShowStats

	scn := scene.New()
	scn.World.Gravity = rl.NewVector2(prefs.Gravity[0], prefs.Gravity[1])
	scn.World.Speed = prefs.Speed
	scn.World.Delegate = &contactLog{log: log, dbg: dbg}

	center := rl.NewVector2(graphics.WindowWidth/2, graphics.WindowHeight/2)

	// Hollow frame around the window interior, in the root's local space.
	frame := scene.NewNode("frame")
	frame.AttachBody(physics.NewBody(physics.EdgeLoopShape(
		rl.NewRectangle(40, 40, graphics.WindowWidth-80, graphics.WindowHeight-80))))
	scn.Root.AddChild(frame)

	// A static block in the middle and a circle sweeping across it.
	block := scene.NewNode("block")
	block.Position = center
	block.AttachBody(physics.NewBody(physics.RectShape(rl.NewVector2(220, 60))))
	scn.Root.AddChild(block)

	rover := scene.NewNode("rover")
	rover.Position = rl.NewVector2(center.X-300, center.Y)
	rover.AttachBody(physics.NewBody(physics.CircleShape(36)))
	scn.Root.AddChild(rover)

	// Radial pull limited to a circular region around the attractor.
	attractor := scene.NewNode("attractor")
	attractor.Position = rl.NewVector2(center.X+320, center.Y-180)
	attractor.Field = &physics.Field{
		Evaluator: physics.RadialGravityField(),
		Region:    region.Circle(240),
		Strength:  180,
		Falloff:   0.02,
	}
	scn.Root.AddChild(attractor)

	var t float32
	update := func() {
		t += rl.GetFrameTime()
		// Sweep the rover through the block so contacts begin and end.
		rover.Position = rl.NewVector2(center.X+340*math32.Sin(t*0.7), center.Y+40*math32.Sin(t*1.3))
		scn.World.Step(rl.GetFrameTime())

		bodies := 0
		scn.Root.Walk(func(n *scene.Node) bool {
			if n.Body != nil {
				bodies++
			}
			return true
		})
		dbg.SetBodies(bodies)
	}

	draw := func() {
		if prefs.GridVisible {
			drawGrid()
		}

		mouse := rl.GetMousePosition()
		hover := scn.World.FirstBodyAtPoint(mouse)
		scn.Root.Walk(func(n *scene.Node) bool {
			drawBody(n, hover)
			return true
		})
		drawFieldRegion(attractor)

		// Ray from the bottom-left corner to the mouse, with its first hit.
		start := rl.NewVector2(40, graphics.WindowHeight-40)
		rl.DrawLineV(start, mouse, rl.DarkGray)
		if b, point, normal := scn.World.FirstBodyAlongRay(start, mouse); b != nil {
			rl.DrawCircleV(point, 5, rl.Yellow)
			tip := rl.Vector2Add(point, rl.Vector2Scale(normal, 24))
			rl.DrawLineV(point, tip, rl.Yellow)
		}

		// Field force at the mouse position.
		force := scn.World.SampleFields(mouse)
		if force.X != 0 || force.Y != 0 {
			rl.DrawLineV(mouse, rl.Vector2Add(mouse, force), rl.SkyBlue)
		}

		dbg.Draw()
	}

	graphics.Run("physics sandbox", update, draw)
}

// gridStep is the sandbox background grid spacing in pixels.
const gridStep = 40

func drawGrid() {
	faint := rl.NewColor(255, 255, 255, 20)
	for x := int32(0); x <= graphics.WindowWidth; x += gridStep {
		rl.DrawLine(x, 0, x, graphics.WindowHeight, faint)
	}
	for y := int32(0); y <= graphics.WindowHeight; y += gridStep {
		rl.DrawLine(0, y, graphics.WindowWidth, y, faint)
	}
}

// drawBody outlines a node's body, highlighting the one under the cursor.
func drawBody(n *scene.Node, hover *physics.Body) {
	if n.Body == nil {
		return
	}
	color := rl.Gray
	if n.Body == hover {
		color = rl.Red
	}
	origin := n.WorldPosition()
	switch n.Body.Shape.Kind {
	case physics.ShapeCircle, physics.ShapeCircleOffset:
		c := rl.Vector2Add(origin, n.Body.Shape.Center)
		rl.DrawCircleLines(int32(c.X), int32(c.Y), n.Body.Shape.Radius, color)
	default:
		rl.DrawRectangleLinesEx(n.Body.AABB(origin), 1, color)
	}
}

// drawFieldRegion traces the outline of a field node's region.
func drawFieldRegion(n *scene.Node) {
	if n.Field == nil || n.Field.Region == nil {
		return
	}
	pts := n.Field.Region.Path()
	if len(pts) < 2 {
		return
	}
	origin := n.WorldPosition()
	for i := range pts {
		a := rl.Vector2Add(origin, pts[i])
		b := rl.Vector2Add(origin, pts[(i+1)%len(pts)])
		rl.DrawLineV(a, b, rl.SkyBlue)
	}
}
