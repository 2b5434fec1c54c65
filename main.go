// Static variant: bring the pipeline up, draw the quad once from a fixed
// eye, then leave the window up until it is closed. Exactly one draw call
// is issued.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"quadspin/internal/anim"
	"quadspin/internal/graphics"
)

func init() { runtime.LockOSThread() }

const (
	// Square viewport, aspect 1.0
	winW = 600
	winH = 600
)

func main() {
	if err := glfw.Init(); err != nil {
		fatal("glfw init failed", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(winW, winH, "quadspin (static)", nil, nil)
	if err != nil {
		fatal("window creation failed", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		fatal("opengl init failed", err)
	}

	quad := graphics.NewQuad(
		filepath.Join(graphics.ShadersDir, graphics.FlatVertShader),
		filepath.Join(graphics.ShadersDir, graphics.FlatFragShader),
		false,
	)
	renderer, err := graphics.NewRenderer(winW, winH, quad)
	if err != nil {
		fatal("pipeline construction failed", err)
	}
	defer renderer.Dispose()

	// One frame, then idle: the static scene never changes.
	renderer.Render(anim.StaticView(), 0)
	window.SwapBuffers()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	for !window.ShouldClose() {
		glfw.WaitEvents()
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
