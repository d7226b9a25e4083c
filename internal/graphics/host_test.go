package graphics

import (
	"testing"

	"camping-showcase/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestHostNotifiesInOrder(t *testing.T) {
	h := NewHost()
	var got []string
	h.OnResize(func() { got = append(got, "a") })
	h.OnResize(func() { got = append(got, "b") })

	h.NotifyResize()
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, h.Listeners())
}

func TestHostUnsubscribe(t *testing.T) {
	h := NewHost()
	calls := 0
	off := h.OnResize(func() { calls++ })
	keep := 0
	h.OnResize(func() { keep++ })

	off()
	off()
	h.NotifyResize()

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, keep)
	assert.Equal(t, 1, h.Listeners())
}

func TestHostUnsubscribeDuringNotify(t *testing.T) {
	h := NewHost()
	calls := 0
	var off func()
	off = h.OnResize(func() {
		calls++
		off()
	})
	h.NotifyResize()
	h.NotifyResize()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, h.Listeners())
}

func TestWindowFlags(t *testing.T) {
	assert.Equal(t, uint32(0), windowFlags(config.WindowConfig{}))
	assert.Equal(t, uint32(rl.FlagWindowResizable|rl.FlagMsaa4xHint), windowFlags(config.WindowConfig{Resizable: true, MSAA: true}))
}
