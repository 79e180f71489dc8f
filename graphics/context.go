package graphics

// Context defines the interface for an OpenGL window context.
type Context interface {
	MakeCurrent()
	// ProcessInput samples key state once; the exit key sets the close flag.
	ProcessInput()
	RequestClose()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Shutdown()
}
