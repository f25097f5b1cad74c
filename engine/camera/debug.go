package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
)

// DebugColor is an RGBA color for debug shapes.
type DebugColor [4]uint8

// DebugColorRed is used for penetration probe shapes.
var DebugColorRed = DebugColor{255, 0, 0, 255}

// DebugDrawer receives diagnostic shapes. Purely optional; a nil drawer draws nothing.
type DebugDrawer interface {
	// DrawSphere draws a wireframe sphere.
	//
	// Parameters:
	//   - center: sphere center
	//   - radius: sphere radius
	//   - segments: tessellation hint
	//   - color: line color
	DrawSphere(center common.Vec3, radius float32, segments int, color DebugColor)

	// DrawLine draws a line segment.
	//
	// Parameters:
	//   - start: segment start
	//   - end: segment end
	//   - color: line color
	DrawLine(start, end common.Vec3, color DebugColor)
}

// DebugSphere is a sphere captured by a DebugRecorder.
type DebugSphere struct {
	Center   common.Vec3
	Radius   float32
	Segments int
	Color    DebugColor
}

// DebugLine is a line captured by a DebugRecorder.
type DebugLine struct {
	Start common.Vec3
	End   common.Vec3
	Color DebugColor
}

// DebugRecorder is a DebugDrawer that keeps every shape it is given until Reset.
// Headless hosts and tests use it to inspect probe geometry.
type DebugRecorder struct {
	mu      sync.Mutex
	spheres []DebugSphere
	lines   []DebugLine
}

var _ DebugDrawer = &DebugRecorder{}

// NewDebugRecorder creates an empty recorder.
func NewDebugRecorder() *DebugRecorder {
	return &DebugRecorder{}
}

func (r *DebugRecorder) DrawSphere(center common.Vec3, radius float32, segments int, color DebugColor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spheres = append(r.spheres, DebugSphere{Center: center, Radius: radius, Segments: segments, Color: color})
}

func (r *DebugRecorder) DrawLine(start, end common.Vec3, color DebugColor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, DebugLine{Start: start, End: end, Color: color})
}

// Spheres returns a copy of the recorded spheres.
func (r *DebugRecorder) Spheres() []DebugSphere {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DebugSphere, len(r.spheres))
	copy(out, r.spheres)
	return out
}

// Lines returns a copy of the recorded lines.
func (r *DebugRecorder) Lines() []DebugLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DebugLine, len(r.lines))
	copy(out, r.lines)
	return out
}

// Reset discards all recorded shapes.
func (r *DebugRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spheres = r.spheres[:0]
	r.lines = r.lines[:0]
}
