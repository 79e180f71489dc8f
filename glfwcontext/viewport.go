package glfwcontext

// ViewportRect maps a framebuffer size to the full-window viewport rectangle
// (0, 0, width, height). Degenerate sizes clamp to zero.
func ViewportRect(width, height int) (x, y, w, h int32) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return 0, 0, int32(width), int32(height)
}
