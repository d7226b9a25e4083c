package rendertexture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldRender(t *testing.T) {
	assert.True(t, ShouldRender(0, 0))
	assert.True(t, ShouldRender(0, 1000))
	assert.True(t, ShouldRender(2, 1))
	assert.False(t, ShouldRender(2, 2))
	assert.False(t, ShouldRender(1, 5))
}

func TestAspect(t *testing.T) {
	assert.Equal(t, float32(2), New(1024, 512).Aspect())
	assert.Equal(t, float32(1), (&Target{}).Aspect())
}

func TestRenderSkipsEmptyTarget(t *testing.T) {
	tgt := New(0, 0)
	called := false
	tgt.Render(func() { called = true })
	assert.False(t, called)
	assert.Equal(t, 0, tgt.Rendered())
	_, ok := tgt.Texture()
	assert.False(t, ok)
}
