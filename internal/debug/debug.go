package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap, simulation stats). All
// overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool

	bodies       int
	begun, ended uint64

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetBodies records the current body count shown by the stats overlay.
func (d *Debug) SetBodies(n int) {
	d.bodies = n
}

// CountContactBegin bumps the running begin-event total.
func (d *Debug) CountContactBegin() {
	d.begun++
}

// CountContactEnd bumps the running end-event total.
func (d *Debug) CountContactEnd() {
	d.ended++
}

// Draw renders any enabled debug overlays at the top-right, one line each:
// FPS, heap allocation, then body/contact stats. Call last in the draw loop.
// FPS and heap text are only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(overlayPadding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawLine(d.lastFpsText, screenW, y)
		y += overlayLineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawLine(d.lastMemText, screenW, y)
		y += overlayLineHeight
	}

	if d.ShowStats {
		drawLine(fmt.Sprintf("Bodies: %d", d.bodies), screenW, y)
		y += overlayLineHeight
		drawLine(fmt.Sprintf("Contacts: %d begun / %d ended", d.begun, d.ended), screenW, y)
	}
}

// drawLine draws one right-aligned overlay line in green.
func drawLine(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, overlayFontSize)
	rl.DrawText(text, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
}
