package options

// Built-in window parameters, used as flag defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "OpenGL Template"
)

// Options holds the window parameters for the bootstrap.
type Options struct {
	Width  *int
	Height *int
	Title  *string
	Help   *bool
}

// Defaults returns an Options populated with the built-in window parameters.
func Defaults() *Options {
	width := DefaultWidth
	height := DefaultHeight
	title := DefaultTitle
	help := false
	return &Options{
		Width:  &width,
		Height: &height,
		Title:  &title,
		Help:   &help,
	}
}
