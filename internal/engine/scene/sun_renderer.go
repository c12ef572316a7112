package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/landscape/internal/engine/geometry"
	"github.com/Faultbox/landscape/internal/engine/scene/shaders"
	"github.com/Faultbox/landscape/internal/engine/shader"
)

// Sun marker tessellation.
const (
	sunSectors = 36
	sunStacks  = 18
)

// SunRenderer draws an unlit sphere at the light position.
type SunRenderer struct {
	program *shader.Program

	vao, vbo, ebo uint32
	indexCount    int32
}

// NewSunRenderer builds the sun sphere and uploads it.
func NewSunRenderer(radius float32) (*SunRenderer, error) {
	program, err := shader.NewProgram(shaders.SunVertexShader, shaders.SunFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sun shader: %w", err)
	}

	sphere, err := geometry.Sphere(radius, sunSectors, sunStacks)
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("sun mesh: %w", err)
	}

	sr := &SunRenderer{program: program}
	sr.upload(sphere.Flatten(), sphere.Indices)
	return sr, nil
}

func (sr *SunRenderer) upload(positions []float32, indices []uint32) {
	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &sr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	sr.indexCount = int32(len(indices))
}

// Render draws the sun at the frame's light position.
func (sr *SunRenderer) Render(f *Frame) {
	if sr.vao == 0 {
		return
	}

	sr.program.Use()
	sr.program.SetMat4("model", mgl32.Translate3D(f.LightPos.X(), f.LightPos.Y(), f.LightPos.Z()))
	sr.program.SetMat4("view", f.View)
	sr.program.SetMat4("projection", f.Projection)
	sr.program.SetVec3("color", f.SunColor)

	gl.BindVertexArray(sr.vao)
	gl.DrawElements(gl.TRIANGLES, sr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (sr *SunRenderer) Destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
		sr.vbo = 0
	}
	if sr.ebo != 0 {
		gl.DeleteBuffers(1, &sr.ebo)
		sr.ebo = 0
	}
	if sr.program != nil {
		sr.program.Delete()
		sr.program = nil
	}
}
