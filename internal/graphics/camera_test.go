package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

// perspective builds the reference matrix element by element from the
// standard formula, independent of mathgl.
func perspective(fovyDeg, aspect, near, far float64) mgl32.Mat4 {
	f := 1 / math.Tan(fovyDeg*math.Pi/180/2)
	var m mgl32.Mat4 // column-major
	m[0] = float32(f / aspect)
	m[5] = float32(f)
	m[10] = float32((far + near) / (near - far))
	m[11] = -1
	m[14] = float32(2 * far * near / (near - far))
	return m
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(900, 600)
	if c.FOV != 45.0 {
		t.Errorf("FOV = %v, want 45", c.FOV)
	}
	if c.NearPlane != 0.1 {
		t.Errorf("NearPlane = %v, want 0.1", c.NearPlane)
	}
	if c.FarPlane != 100.0 {
		t.Errorf("FarPlane = %v, want 100", c.FarPlane)
	}
	if c.AspectRatio != 1.5 {
		t.Errorf("AspectRatio = %v, want 1.5", c.AspectRatio)
	}
}

// TestProjectionMatchesPerspectiveFormula compares the camera's projection
// against the standard perspective formula element by element.
func TestProjectionMatchesPerspectiveFormula(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"square", 600, 600},
		{"landscape", 900, 600},
		{"wide", 1920, 1080},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(tc.width, tc.height)
			got := c.ProjectionMatrix()
			want := perspective(45.0, float64(tc.width)/float64(tc.height), 0.1, 100.0)

			for i := 0; i < 16; i++ {
				if d := float64(got[i] - want[i]); d > epsilon || d < -epsilon {
					t.Errorf("projection[%d] = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSetViewport(t *testing.T) {
	c := NewCamera(900, 600)

	c.SetViewport(600, 600)
	if c.AspectRatio != 1.0 {
		t.Errorf("AspectRatio after resize = %v, want 1.0", c.AspectRatio)
	}
	// Only the aspect changes on resize.
	if c.FOV != 45.0 || c.NearPlane != 0.1 || c.FarPlane != 100.0 {
		t.Errorf("resize changed frustum params: FOV=%v near=%v far=%v", c.FOV, c.NearPlane, c.FarPlane)
	}

	// Degenerate viewports are ignored.
	c.SetViewport(800, 0)
	if c.AspectRatio != 1.0 {
		t.Errorf("AspectRatio after zero-height resize = %v, want 1.0", c.AspectRatio)
	}
}
