package app

import (
	"log/slog"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"quadspin/internal/anim"
	"quadspin/internal/graphics"
)

// slowFrameThreshold flags frames that overran a 60 FPS budget.
const slowFrameThreshold = 16 * time.Millisecond

// App owns the window and drives the frame loop: each tick polls events,
// advances the animation state, renders one frame and presents it. Ticks
// are strictly sequential with monotonically non-decreasing timestamps;
// there is no cancellation beyond closing the window.
type App struct {
	window   *glfw.Window
	renderer *graphics.Renderer

	state    anim.State
	limiter  *FPSLimiter
	clock    frameClock
	lastTime time.Time
}

// New wires the window to the renderer and registers resize and key
// handling. Esc requests close.
func New(window *glfw.Window, renderer *graphics.Renderer) *App {
	a := &App{
		window:   window,
		renderer: renderer,
		state:    anim.NewState(),
		limiter:  NewFPSLimiter(),
		lastTime: time.Now(),
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		renderer.UpdateViewport(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	return a
}

// Run loops until the window should close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	a.clock.beginFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	func() { defer a.clock.track(&a.clock.updateDur)(); a.state = anim.Advance(a.state, dt) }()
	func() { defer a.clock.track(&a.clock.renderDur)(); a.renderer.Render(a.state.View(), dt) }()
	func() { defer a.clock.track(&a.clock.presentDur)(); a.window.SwapBuffers() }()

	if total := a.clock.total(); total > slowFrameThreshold {
		slog.Warn("slow frame",
			"total", total,
			"update", a.clock.updateDur,
			"render", a.clock.renderDur,
			"present", a.clock.presentDur)
	}

	a.limiter.Wait()
}
