package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func newTestContext() *Context {
	// No window: exercises the key dispatch and close-flag logic only.
	return &Context{keyCallbacks: make(map[glfw.Key]func())}
}

func TestEscapeRequestsClose(t *testing.T) {
	c := newTestContext()
	assert.False(t, c.ShouldClose())

	c.handleKey(glfw.KeyEscape, glfw.Press)
	assert.True(t, c.ShouldClose())
}

func TestOtherKeysDoNotClose(t *testing.T) {
	c := newTestContext()
	for _, key := range []glfw.Key{glfw.KeySpace, glfw.KeyEnter, glfw.KeyA, glfw.KeyQ} {
		c.handleKey(key, glfw.Press)
	}
	assert.False(t, c.ShouldClose())
}

func TestEscapeReleaseIgnored(t *testing.T) {
	c := newTestContext()
	c.handleKey(glfw.KeyEscape, glfw.Release)
	assert.False(t, c.ShouldClose())
}

func TestRegisteredKeyCallback(t *testing.T) {
	c := newTestContext()
	fired := 0
	c.RegisterKeyCallback(glfw.KeyR, func() { fired++ })

	c.handleKey(glfw.KeyR, glfw.Press)
	c.handleKey(glfw.KeyR, glfw.Release)
	c.handleKey(glfw.KeyT, glfw.Press)
	assert.Equal(t, 1, fired)
	assert.False(t, c.ShouldClose())
}

func TestRequestCloseSticks(t *testing.T) {
	c := newTestContext()
	c.RequestClose()
	assert.True(t, c.ShouldClose())
	assert.True(t, c.ShouldClose())
}
