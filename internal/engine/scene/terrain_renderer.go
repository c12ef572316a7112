package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/landscape/internal/engine/scene/shaders"
	"github.com/Faultbox/landscape/internal/engine/shader"
	"github.com/Faultbox/landscape/internal/engine/terrain"
)

// TerrainRenderer draws a terrain mesh with Phong lighting and a
// height-based colour ramp.
type TerrainRenderer struct {
	program *shader.Program

	vao, vbo, ebo uint32
	indexCount    int32

	// Bounds
	MinBounds [3]float32
	MaxBounds [3]float32
}

// NewTerrainRenderer creates a new terrain renderer.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.NewProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	return &TerrainRenderer{program: program}, nil
}

// LoadMesh uploads a mesh, replacing any previous one.
func (tr *TerrainRenderer) LoadMesh(mesh *terrain.Mesh) error {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("terrain mesh is empty")
	}

	tr.clearMesh()
	tr.MinBounds = mesh.Bounds.Min
	tr.MaxBounds = mesh.Bounds.Max
	tr.uploadMesh(mesh.Vertices, mesh.Indices)
	return nil
}

func (tr *TerrainRenderer) uploadMesh(vertices []terrain.Vertex, indices []uint32) {
	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*terrain.VertexStride, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, terrain.VertexStride, terrain.PositionOffset)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, terrain.VertexStride, terrain.NormalOffset)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, terrain.VertexStride, terrain.TexCoordOffset)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	tr.indexCount = int32(len(indices))
}

// Render draws the terrain for one frame.
func (tr *TerrainRenderer) Render(f *Frame, fogFar float32) {
	if tr.vao == 0 {
		return
	}

	tr.program.Use()
	tr.program.SetMat4("model", mgl32.Ident4())
	tr.program.SetMat4("view", f.View)
	tr.program.SetMat4("projection", f.Projection)
	tr.program.SetVec3("lightPos", f.LightPos)
	tr.program.SetVec3("viewPos", f.ViewPos)
	tr.program.SetVec3("lightColor", f.LightColor)
	tr.program.SetFloat("lightIntensity", f.LightIntensity)
	tr.program.SetFloat("minHeight", tr.MinBounds[1])
	tr.program.SetFloat("maxHeight", tr.MaxBounds[1])
	tr.program.SetVec3("fogColor", f.SkyColor)
	tr.program.SetFloat("fogFar", fogFar)

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (tr *TerrainRenderer) clearMesh() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	tr.indexCount = 0
}

// Destroy releases GPU resources.
func (tr *TerrainRenderer) Destroy() {
	tr.clearMesh()
	if tr.program != nil {
		tr.program.Delete()
		tr.program = nil
	}
}
