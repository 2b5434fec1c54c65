package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features. It owns the
// camera and rebuilds the projection matrix every frame; the view matrix is
// supplied by the caller, so the frame path stays independent of how the
// view evolves over time.
type Renderer struct {
	renderables []Renderable
	camera      *Camera
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	renderer := &Renderer{
		renderables: rs,
		camera:      NewCamera(width, height),
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render executes one frame
func (r *Renderer) Render(view mgl32.Mat4, dt float64) {
	ctx := RenderContext{
		Proj: r.camera.ProjectionMatrix(),
		View: view,
		DT:   dt,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Camera returns the camera instance
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// UpdateViewport updates the camera and renderables after a resize
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
