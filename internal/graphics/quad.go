package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader file paths
const (
	ShadersDir = "assets/shaders"

	QuadVertShader = "quad.vert"
	QuadFragShader = "quad.frag"
	FlatVertShader = "flat.vert"
	FlatFragShader = "flat.frag"
)

// Attribute and uniform names the quad shaders must expose.
const (
	VertexAttrib      = "Vertex"
	ColorAttrib       = "Color"
	ProjectionUniform = "Projection"
	ModelViewUniform  = "ModelView"
)

// Quad renders the quad. The geometry is static; only the two matrices
// change between frames.
type Quad struct {
	vertPath string
	fragPath string
	colored  bool

	shader *Shader
	mesh   *QuadMesh
}

// NewQuad prepares a quad feature reading its shader stages from the given
// files. When colored is set the per-corner color buffer is bound as well.
func NewQuad(vertPath, fragPath string, colored bool) *Quad {
	return &Quad{vertPath: vertPath, fragPath: fragPath, colored: colored}
}

// Init compiles the pipeline, resolves bindings and uploads the geometry.
func (q *Quad) Init() error {
	attribs := []string{VertexAttrib}
	if q.colored {
		attribs = append(attribs, ColorAttrib)
	}
	uniforms := []string{ProjectionUniform, ModelViewUniform}

	shader, err := NewShader(q.vertPath, q.fragPath, attribs, uniforms)
	if err != nil {
		return err
	}
	q.shader = shader

	colorAttrib := int32(-1)
	if q.colored {
		colorAttrib = int32(shader.AttribLocation(ColorAttrib))
	}
	q.mesh = NewQuadMesh(shader.AttribLocation(VertexAttrib), colorAttrib)

	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0, 0, 0, 1)
	gl.ClearDepth(1)

	return nil
}

// Render clears the frame and issues the single triangle-strip draw.
func (q *Quad) Render(ctx RenderContext) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	q.shader.Use()
	proj := ctx.Proj
	view := ctx.View
	q.shader.SetMatrix4(ProjectionUniform, &proj[0])
	q.shader.SetMatrix4(ModelViewUniform, &view[0])

	q.mesh.Bind()
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, q.mesh.VertexCount())
}

// SetViewport is part of the Renderable interface; the quad carries no
// viewport-dependent state.
func (q *Quad) SetViewport(width, height int) {}

// Dispose releases the mesh and the program.
func (q *Quad) Dispose() {
	if q.mesh != nil {
		q.mesh.Dispose()
		q.mesh = nil
	}
	if q.shader != nil {
		q.shader.Dispose()
		q.shader = nil
	}
}
