package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window dimensions for the sandbox. A fixed window keeps the 2D scene
// coordinates stable across machines.
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// Run starts the window and main loop. Each frame it calls update (input,
// simulation step), then clears the screen and calls draw. This keeps the
// graphics layer separate from simulation and overlay content.
func Run(title string, update, draw func()) {
	rl.InitWindow(WindowWidth, WindowHeight, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
