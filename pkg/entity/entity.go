// Package entity defines the renderer-facing intermediate
// representation of CAD entities. The set is closed: every entity is
// one of Line, Circle, Arc, Polyline or Text, discriminated by Kind.
// Entities carry no UI state; renderers and exporters consume them
// read-only.
package entity

import (
	"fmt"

	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/philipparndt/godxf/pkg/triangle"
)

// Kind discriminates the entity variants
type Kind int

const (
	KindLine Kind = iota
	KindCircle
	KindArc
	KindPolyline
	KindText
)

// String returns the entity kind name
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	case KindPolyline:
		return "polyline"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Line is a straight segment between two points
type Line struct {
	Start geometry.Vector2
	End   geometry.Vector2
}

// Circle is a full circle
type Circle struct {
	Center geometry.Vector2
	Radius float64
}

// Arc is a circular arc swept counterclockwise from StartAngle to
// EndAngle, in degrees.
type Arc struct {
	Center     geometry.Vector2
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Polyline is a sequence of connected points, optionally closed
type Polyline struct {
	Points []geometry.Vector2
	Closed bool
}

// Text is an annotation placed at a point. Rotation is in degrees,
// Height is the text height in drawing units.
type Text struct {
	Value    string
	Position geometry.Vector2
	Height   float64
	Rotation float64
}

// Entity is one drawable element. Exactly one of the variant fields is
// non-nil, matching Kind.
type Entity struct {
	Kind     Kind
	Line     *Line
	Circle   *Circle
	Arc      *Arc
	Polyline *Polyline
	Text     *Text
}

// NewLine wraps a Line in an Entity
func NewLine(start, end geometry.Vector2) Entity {
	return Entity{Kind: KindLine, Line: &Line{Start: start, End: end}}
}

// NewCircle wraps a Circle in an Entity
func NewCircle(center geometry.Vector2, radius float64) Entity {
	return Entity{Kind: KindCircle, Circle: &Circle{Center: center, Radius: radius}}
}

// NewArc wraps an Arc in an Entity
func NewArc(center geometry.Vector2, radius, startAngle, endAngle float64) Entity {
	return Entity{Kind: KindArc, Arc: &Arc{
		Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle,
	}}
}

// NewPolyline wraps a Polyline in an Entity
func NewPolyline(points []geometry.Vector2, closed bool) Entity {
	return Entity{Kind: KindPolyline, Polyline: &Polyline{Points: points, Closed: closed}}
}

// NewText wraps a Text in an Entity
func NewText(value string, position geometry.Vector2, height, rotation float64) Entity {
	return Entity{Kind: KindText, Text: &Text{
		Value: value, Position: position, Height: height, Rotation: rotation,
	}}
}

// LabelOptions controls the annotations emitted by FromTriangle
type LabelOptions struct {
	Numbers    bool    // triangle number at the centroid
	Dimensions bool    // edge length at each edge midpoint
	TextHeight float64 // height for all labels; 0 means 10 drawing units
}

// DefaultLabelOptions enables all annotations at the default height
func DefaultLabelOptions() LabelOptions {
	return LabelOptions{Numbers: true, Dimensions: true}
}

// FromTriangle converts one triangle into its drawable entities: the
// closed outline polyline first, then the optional number and
// dimension labels. Dimension labels are rotated along their edge,
// flipped where needed so the text is never upside down.
func FromTriangle(t *triangle.Triangle, opts LabelOptions) []Entity {
	height := opts.TextHeight
	if height <= 0 {
		height = 10
	}

	points := t.Points()
	entities := []Entity{
		NewPolyline(points[:], true),
	}

	if opts.Numbers {
		entities = append(entities,
			NewText(fmt.Sprintf("%d", t.ID()), t.Centroid(), height, 0))
	}

	if opts.Dimensions {
		for edge := geometry.EdgeA; edge <= geometry.EdgeC; edge++ {
			start, end := t.EdgeLine(edge)
			rotation := end.Sub(start).Angle()
			if rotation > 90 && rotation <= 270 {
				rotation = rotation - 180
				if rotation < 0 {
					rotation += 360
				}
			}
			entities = append(entities, NewText(
				fmt.Sprintf("%.1f", t.Length(edge)),
				t.EdgeMidpoint(edge), height, rotation))
		}
	}

	return entities
}

// FromTree converts every triangle in the tree, in id order
func FromTree(tree *triangle.Tree, opts LabelOptions) []Entity {
	var entities []Entity
	for _, t := range tree.All() {
		entities = append(entities, FromTriangle(t, opts)...)
	}
	return entities
}
