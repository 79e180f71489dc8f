package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	geometry "github.com/richinsley/gltriangle/geometry"
	"github.com/richinsley/gltriangle/glfwcontext"
	graphics "github.com/richinsley/gltriangle/graphics"
	options "github.com/richinsley/gltriangle/options"
	shader "github.com/richinsley/gltriangle/shader"
)

// clearColor is the fixed background, RGBA.
var clearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

// Renderer owns the window context, the shader program, and the triangle
// mesh for the lifetime of the frame loop.
type Renderer struct {
	context graphics.Context
	program *shader.Program
	mesh    *geometry.Mesh
}

// NewRenderer opens the window and brings up the OpenGL context.
func NewRenderer(opts *options.Options) (*Renderer, error) {
	r := &Renderer{}
	var err error

	r.context, err = glfwcontext.New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize glfw context: %w", err)
	}

	return r, nil
}

// InitScene compiles the fixed shader program and uploads the triangle mesh.
func (r *Renderer) InitScene() error {
	var err error
	r.program, err = shader.NewProgram(shader.VertexShaderSource, shader.FragmentShaderSource)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}

	r.mesh = geometry.NewMesh(geometry.TriangleVertices)
	return nil
}

// RenderFrame clears the color buffer and draws the triangle.
func (r *Renderer) RenderFrame() {
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.program.Use()
	r.mesh.Draw()
}

// Run drives the frame loop until the window close flag is set, either by the
// OS close button or the Escape key.
func (r *Renderer) Run() {
	for !r.context.ShouldClose() {
		r.context.ProcessInput()
		r.RenderFrame()
		r.context.EndFrame()
	}
}

// Shutdown releases GPU resources before the window: the vertex array and
// vertex buffer first, then the shader program, then the context.
func (r *Renderer) Shutdown() {
	if r.mesh != nil {
		r.mesh.Destroy()
	}
	if r.program != nil {
		r.program.Delete()
	}
	if r.context != nil {
		r.context.Shutdown()
	}
}
