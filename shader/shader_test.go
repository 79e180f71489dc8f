package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertexShaderSource(t *testing.T) {
	assert.True(t, strings.HasPrefix(VertexShaderSource, "#version 330 core"))
	assert.Contains(t, VertexShaderSource, "layout (location = 0) in vec3 aPos")
	assert.Contains(t, VertexShaderSource, "gl_Position")
}

func TestFragmentShaderSource(t *testing.T) {
	assert.True(t, strings.HasPrefix(FragmentShaderSource, "#version 330 core"))
	assert.Contains(t, FragmentShaderSource, "FragColor = vec4(1.0, 0.5, 0.2, 1.0)")
}

func TestSourcesNotTerminated(t *testing.T) {
	// compileShader appends the null terminator itself; an embedded one
	// would truncate the source handed to the driver.
	assert.NotContains(t, VertexShaderSource, "\x00")
	assert.NotContains(t, FragmentShaderSource, "\x00")
}
