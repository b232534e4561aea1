package viewer

import (
	"math"

	"github.com/philipparndt/godxf/pkg/geometry"
)

// Camera maps drawing coordinates to screen coordinates. Drawing
// space is Y-up (CAD convention), screen space is Y-down.
type Camera struct {
	Center geometry.Vector2 // drawing-space point at the viewport center
	Scale  float64          // pixels per drawing unit
}

// NewCamera creates a camera at the origin with 1:1 scale
func NewCamera() *Camera {
	return &Camera{Scale: 1}
}

// FitBounds positions the camera so the bounding box fills the
// viewport with a small margin.
func (c *Camera) FitBounds(bbox geometry.BoundingBox, width, height float64) {
	if bbox.IsEmpty() || width <= 0 || height <= 0 {
		return
	}
	c.Center = bbox.Center()

	size := bbox.Size()
	scale := math.MaxFloat64
	if size.X > 0 {
		scale = width / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, height/size.Y)
	}
	if scale == math.MaxFloat64 {
		scale = 1
	}
	c.Scale = scale * 0.9
}

// Project converts a drawing-space point to screen coordinates
func (c *Camera) Project(point geometry.Vector2, width, height float64) (float64, float64) {
	x := (point.X-c.Center.X)*c.Scale + width/2
	y := height/2 - (point.Y-c.Center.Y)*c.Scale
	return x, y
}

// Unproject converts screen coordinates back to drawing space
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Vector2 {
	return geometry.Vector2{
		X: (screenX-width/2)/c.Scale + c.Center.X,
		Y: (height/2-screenY)/c.Scale + c.Center.Y,
	}
}

// Pan moves the camera by a screen-space delta
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.Center.X -= deltaX / c.Scale
	c.Center.Y += deltaY / c.Scale
}

// Zoom scales the view by the given factor, clamped to a sane range
func (c *Camera) Zoom(factor float64) {
	c.Scale *= factor
	if c.Scale < 1e-6 {
		c.Scale = 1e-6
	}
	if c.Scale > 1e6 {
		c.Scale = 1e6
	}
}
