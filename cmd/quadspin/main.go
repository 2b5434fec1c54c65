// Animated variant: a colored quad spins about Z for one revolution,
// tumbles about Z/Y/X for a second revolution, then freezes while the
// frame loop keeps running.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"quadspin/internal/app"
	"quadspin/internal/config"
	"quadspin/internal/graphics"
)

const settingsFile = "settings.yml"

func init() { runtime.LockOSThread() }

func main() {
	defer closer.Close()

	config.Load(settingsFile)

	if err := glfw.Init(); err != nil {
		fatal("glfw init failed", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		fatal("window creation failed", err)
	}

	if err := gl.Init(); err != nil {
		fatal("opengl init failed", err)
	}

	quad := graphics.NewQuad(
		filepath.Join(graphics.ShadersDir, graphics.QuadVertShader),
		filepath.Join(graphics.ShadersDir, graphics.QuadFragShader),
		true,
	)
	width, height := window.GetFramebufferSize()
	renderer, err := graphics.NewRenderer(width, height, quad)
	if err != nil {
		fatal("pipeline construction failed", err)
	}
	closer.Bind(renderer.Dispose)

	slog.Info("starting render loop",
		"width", width,
		"height", height,
		"fps_limit", config.FPSLimit(),
		"vsync", config.VSync())

	app.New(window, renderer).Run()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.WindowSize()
	window, err := glfw.CreateWindow(width, height, "quadspin", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if config.VSync() {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return window, nil
}

// fatal reports a setup error and exits after running bound cleanups.
// There is no fallback rendering path.
func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	closer.Close()
	os.Exit(1)
}
