package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	opts := Defaults()
	require.NotNil(t, opts.Width)
	require.NotNil(t, opts.Height)
	require.NotNil(t, opts.Title)
	require.NotNil(t, opts.Help)

	assert.Equal(t, 800, *opts.Width)
	assert.Equal(t, 600, *opts.Height)
	assert.Equal(t, "OpenGL Template", *opts.Title)
	assert.False(t, *opts.Help)
}
