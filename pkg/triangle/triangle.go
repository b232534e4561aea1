// Package triangle implements a mutable network of connected
// triangles. Each triangle is defined by its three edge lengths plus a
// base pose (anchor vertex and orientation), and new triangles attach
// to an edge of an existing one so that a dimension change on any
// triangle cascades through every descendant anchored to it.
package triangle

import (
	"fmt"

	"github.com/philipparndt/godxf/pkg/geometry"
)

// Triangle is one node of the network. Its vertices, internal angles
// and centroid are derived from the lengths and base pose and are
// refreshed on every mutation; they are a cache, never a source of
// truth. All mutation goes through the owning Tree.
type Triangle struct {
	id             int
	lengths        [3]float64
	basePoint      geometry.Vector2
	orientationDeg float64

	points         [3]geometry.Vector2
	internalAngles [3]float64
	centroid       geometry.Vector2

	parent     *Triangle
	parentEdge geometry.Edge
	children   [3]*Triangle
}

// newTriangle builds a node from validated lengths and a base pose.
// Callers must have checked geometry.IsValidTriangle already.
func newTriangle(id int, lengths [3]float64, base geometry.Vector2, orientationDeg float64) *Triangle {
	t := &Triangle{
		id:             id,
		lengths:        lengths,
		basePoint:      base,
		orientationDeg: orientationDeg,
	}
	t.recompute()
	return t
}

// recompute refreshes the derived vertices, internal angles and
// centroid from the current lengths and base pose. It must be called
// after every mutation of those inputs; this is the core correctness
// contract of the engine.
func (t *Triangle) recompute() {
	t.points, t.centroid = geometry.ConstructPoints(
		t.basePoint, t.lengths[0], t.lengths[1], t.lengths[2], t.orientationDeg)
	t.internalAngles = geometry.InternalAngles(t.lengths[0], t.lengths[1], t.lengths[2])
}

// ID returns the triangle's unique number within its tree
func (t *Triangle) ID() int {
	return t.id
}

// Name returns the display name used for labels
func (t *Triangle) Name() string {
	return fmt.Sprintf("Tri_%d", t.id)
}

// Lengths returns the three edge lengths [A, B, C]
func (t *Triangle) Lengths() [3]float64 {
	return t.lengths
}

// Length returns the length of the named edge
func (t *Triangle) Length(edge geometry.Edge) float64 {
	return t.lengths[edge]
}

// BasePoint returns the anchor vertex CA
func (t *Triangle) BasePoint() geometry.Vector2 {
	return t.basePoint
}

// OrientationDeg returns the direction of the CA→AB edge in degrees
func (t *Triangle) OrientationDeg() float64 {
	return t.orientationDeg
}

// Points returns the three vertices in order [CA, AB, BC]
func (t *Triangle) Points() [3]geometry.Vector2 {
	return t.points
}

// InternalAngles returns the internal angles in degrees, one per
// vertex; the angle at index 0 is opposite edge A.
func (t *Triangle) InternalAngles() [3]float64 {
	return t.internalAngles
}

// Centroid returns the mean of the three vertices
func (t *Triangle) Centroid() geometry.Vector2 {
	return t.centroid
}

// Parent returns the triangle this one is anchored to, or nil for the
// tree root.
func (t *Triangle) Parent() *Triangle {
	return t.parent
}

// ParentEdge returns the parent edge this triangle is anchored to.
// The second return is false for the tree root.
func (t *Triangle) ParentEdge() (geometry.Edge, bool) {
	if t.parent == nil {
		return 0, false
	}
	return t.parentEdge, true
}

// Child returns the triangle anchored to the named edge, or nil
func (t *Triangle) Child(edge geometry.Edge) *Triangle {
	return t.children[edge]
}

// HasChildren reports whether any edge has a triangle anchored to it
func (t *Triangle) HasChildren() bool {
	return t.children[0] != nil || t.children[1] != nil || t.children[2] != nil
}

// EdgeLine returns the start and end vertex of the named edge
func (t *Triangle) EdgeLine(edge geometry.Edge) (start, end geometry.Vector2) {
	return geometry.EdgeEndpoints(t.points, edge)
}

// EdgeMidpoint returns the midpoint of the named edge
func (t *Triangle) EdgeMidpoint(edge geometry.Edge) geometry.Vector2 {
	start, end := geometry.EdgeEndpoints(t.points, edge)
	return start.Add(end).Mul(0.5)
}

// Area returns the triangle area from its edge lengths
func (t *Triangle) Area() float64 {
	return geometry.Area(t.lengths[0], t.lengths[1], t.lengths[2])
}

// Perimeter returns the sum of the edge lengths
func (t *Triangle) Perimeter() float64 {
	return t.lengths[0] + t.lengths[1] + t.lengths[2]
}
