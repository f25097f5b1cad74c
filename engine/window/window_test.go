package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowOptions(t *testing.T) {
	w := newEngineWindow(
		WithTitle("sandbox"),
		WithSize(800, 0),
		WithSizeLimits(320, 240, 1920, 1080),
		WithResizable(false),
	)

	width, height := w.Size()
	assert.Equal(t, 800, width)
	assert.Equal(t, 720, height)
	assert.Equal(t, sizeLimits{minWidth: 320, minHeight: 240, maxWidth: 1920, maxHeight: 1080}, w.limits)
	assert.False(t, w.resizable)
	assert.Equal(t, "sandbox", w.title)
}

func TestTitleIsQueuedUntilTaken(t *testing.T) {
	w := newEngineWindow()

	_, ok := w.pendingTitle()
	assert.False(t, ok)

	w.SetTitle("first")
	w.SetTitle("blocked 0.300")
	title, ok := w.pendingTitle()
	assert.True(t, ok)
	assert.Equal(t, "blocked 0.300", title)

	_, ok = w.pendingTitle()
	assert.False(t, ok)
}

func TestEventsReachCallbacks(t *testing.T) {
	w := newEngineWindow()
	// no callbacks registered yet
	w.key(87, true)
	w.scroll(1)
	w.drag(1, 1)
	w.resized(100, 50)

	keys := map[uint32]bool{}
	var zoom float32
	var drags [][2]float32
	var resizes [][2]int
	w.SetKeyCallback(func(keyCode uint32, pressed bool) { keys[keyCode] = pressed })
	w.SetScrollCallback(func(delta float32) { zoom += delta })
	w.SetDragCallback(func(dx, dy float32) { drags = append(drags, [2]float32{dx, dy}) })
	w.SetResizeCallback(func(width, height int) { resizes = append(resizes, [2]int{width, height}) })

	w.key(87, true)
	w.key(65, true)
	w.key(87, false)
	w.scroll(2)
	w.scroll(-0.5)
	w.drag(3, -4)
	w.resized(1024, 768)

	assert.Equal(t, map[uint32]bool{87: false, 65: true}, keys)
	assert.Equal(t, float32(1.5), zoom)
	assert.Equal(t, [][2]float32{{3, -4}}, drags)
	assert.Equal(t, [][2]int{{1024, 768}}, resizes)
	width, height := w.Size()
	assert.Equal(t, 1024, width)
	assert.Equal(t, 768, height)
}

func TestDragStateReportsDeltasWhileHeld(t *testing.T) {
	var d dragState

	_, _, ok := d.move(10, 10)
	assert.False(t, ok, "button not held")

	d.button(true, 10, 10)
	dx, dy, ok := d.move(15, 7)
	assert.True(t, ok)
	assert.Equal(t, float32(5), dx)
	assert.Equal(t, float32(-3), dy)

	dx, dy, ok = d.move(15, 9)
	assert.True(t, ok)
	assert.Equal(t, float32(0), dx)
	assert.Equal(t, float32(2), dy)

	d.button(false, 15, 9)
	_, _, ok = d.move(40, 40)
	assert.False(t, ok)
}
