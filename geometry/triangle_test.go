package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleVertices(t *testing.T) {
	want := []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}
	assert.Equal(t, want, TriangleVertices)
	assert.Equal(t, int32(3), VertexCount())
}

func TestSizeBytes(t *testing.T) {
	assert.Equal(t, 36, SizeBytes(TriangleVertices))
	assert.Equal(t, 12, SizeBytes([]float32{0, 0, 0}))
	assert.Equal(t, 0, SizeBytes(nil))
}
