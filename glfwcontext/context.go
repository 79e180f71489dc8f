package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	options "github.com/richinsley/gltriangle/options"
)

// Context owns the GLFW window and the OpenGL context bound to it.
type Context struct {
	window *glfw.Window
	// A map to store functions to be called on key presses.
	keyCallbacks   map[glfw.Key]func()
	closeRequested bool
}

// New creates and initializes a new GLFW window with a current 3.3 core
// context and loaded function pointers, and returns a Context object.
func New(opts *options.Options) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
	}

	// Set the key callback for the window to be the method on our new context instance.
	win.SetKeyCallback(c.glfwKeyCallback)
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to initialize OpenGL loader: %w", err)
	}

	// The viewport tracks the framebuffer size at all times, starting now.
	fbWidth, fbHeight := win.GetFramebufferSize()
	gl.Viewport(ViewportRect(fbWidth, fbHeight))
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(ViewportRect(width, height))
	})

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

// glfwKeyCallback is the function that will be called by GLFW on a key event.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	c.handleKey(key, action)
}

// handleKey dispatches a key event: Escape requests close, registered
// callbacks run on press.
func (c *Context) handleKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}

	if key == glfw.KeyEscape {
		c.RequestClose()
	}

	if callback, ok := c.keyCallbacks[key]; ok {
		callback()
	}
}

// ProcessInput samples the exit key once. Called every loop iteration so the
// close transition happens within one frame of the key going down.
func (c *Context) ProcessInput() {
	if c.window.GetKey(glfw.KeyEscape) == glfw.Press {
		c.RequestClose()
	}
}

// RequestClose sets the window close flag.
func (c *Context) RequestClose() {
	c.closeRequested = true
	if c.window != nil {
		c.window.SetShouldClose(true)
	}
}

func (c *Context) ShouldClose() bool {
	if c.closeRequested {
		return true
	}
	if c.window == nil {
		return false
	}
	return c.window.ShouldClose()
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// EndFrame presents the rendered frame and processes pending window events.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

// InitGraphics initializes the graphics subsystem (GLFW). Must be called from
// the main thread before any other call in this package.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
