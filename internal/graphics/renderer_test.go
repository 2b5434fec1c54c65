package graphics

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// recording implements Renderable without touching the GPU.
type recording struct {
	name string

	initErr   error
	frames    []RenderContext
	viewports [][2]int
	events    *[]string
}

func (r *recording) Init() error { return r.initErr }

func (r *recording) Render(ctx RenderContext) {
	r.frames = append(r.frames, ctx)
}

func (r *recording) SetViewport(width, height int) {
	r.viewports = append(r.viewports, [2]int{width, height})
}

func (r *recording) Dispose() {
	if r.events != nil {
		*r.events = append(*r.events, r.name)
	}
}

// TestRendererStaticFrame drives the static-variant scenario end to end:
// a square viewport, the fixed translate(0,0,-6) eye, and exactly one
// render of the 4-vertex strip quad.
func TestRendererStaticFrame(t *testing.T) {
	rec := &recording{}
	r, err := NewRenderer(600, 600, rec)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	staticView := mgl32.Translate3D(0, 0, -6)
	r.Render(staticView, 0)

	if len(rec.frames) != 1 {
		t.Fatalf("draw count = %d, want exactly 1", len(rec.frames))
	}
	ctx := rec.frames[0]

	if ctx.View != staticView {
		t.Errorf("view matrix:\ngot  %v\nwant %v", ctx.View, staticView)
	}

	wantProj := perspective(45.0, 1.0, 0.1, 100.0)
	for i := 0; i < 16; i++ {
		if d := float64(ctx.Proj[i] - wantProj[i]); d > epsilon || d < -epsilon {
			t.Errorf("projection[%d] = %v, want %v (aspect 1.0)", i, ctx.Proj[i], wantProj[i])
		}
	}

	if QuadVertexCount != 4 {
		t.Errorf("QuadVertexCount = %d, want 4", QuadVertexCount)
	}
}

// TestRendererRebuildsProjectionEveryFrame verifies a viewport change is
// reflected in the very next frame's projection.
func TestRendererRebuildsProjectionEveryFrame(t *testing.T) {
	rec := &recording{}
	r, err := NewRenderer(600, 600, rec)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	view := mgl32.Ident4()
	r.Render(view, 0.016)
	r.UpdateViewport(1200, 600)
	r.Render(view, 0.016)

	if len(rec.frames) != 2 {
		t.Fatalf("draw count = %d, want 2", len(rec.frames))
	}
	wantWide := perspective(45.0, 2.0, 0.1, 100.0)
	got := rec.frames[1].Proj
	for i := 0; i < 16; i++ {
		if d := float64(got[i] - wantWide[i]); d > epsilon || d < -epsilon {
			t.Errorf("post-resize projection[%d] = %v, want %v", i, got[i], wantWide[i])
		}
	}

	if len(rec.viewports) != 1 || rec.viewports[0] != [2]int{1200, 600} {
		t.Errorf("renderable viewports = %v, want [[1200 600]]", rec.viewports)
	}
}

// TestRendererInitFailure verifies a renderable that cannot initialize
// aborts construction.
func TestRendererInitFailure(t *testing.T) {
	boom := errors.New("no context")
	_, err := NewRenderer(600, 600, &recording{initErr: boom})
	if !errors.Is(err, boom) {
		t.Errorf("NewRenderer error = %v, want %v", err, boom)
	}
}

// TestRendererDisposeOrder verifies renderables are released in reverse
// order.
func TestRendererDisposeOrder(t *testing.T) {
	var events []string
	first := &recording{name: "first", events: &events}
	second := &recording{name: "second", events: &events}

	r, err := NewRenderer(600, 600, first, second)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.Dispose()

	if len(events) != 2 || events[0] != "second" || events[1] != "first" {
		t.Errorf("dispose order = %v, want [second first]", events)
	}
}
