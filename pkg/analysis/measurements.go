// Package analysis computes aggregate measurements over a triangle
// scene for reporting in the CLI and the GUI side panel.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/philipparndt/godxf/pkg/triangle"
)

// EdgeInfo contains information about one edge in the scene
type EdgeInfo struct {
	Start      geometry.Vector2
	End        geometry.Vector2
	Length     float64
	TriangleID int
	Edge       geometry.Edge
	Shared     bool // true when a child triangle is anchored to this edge
}

// TriangleInfo contains per-triangle measurements
type TriangleInfo struct {
	ID        int
	Lengths   [3]float64
	Area      float64
	Perimeter float64
	Depth     int // root is depth 0
}

// MeasurementResult contains various measurements of a triangle scene
type MeasurementResult struct {
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector2
	TotalArea      float64
	TotalPerimeter float64
	TriangleCount  int
	EdgeCount      int
	MaxDepth       int
	MinEdgeLength  float64
	MaxEdgeLength  float64
	AvgEdgeLength  float64
	Triangles      []TriangleInfo
	AllEdges       []EdgeInfo
}

// AnalyzeTree performs comprehensive analysis on a triangle scene
func AnalyzeTree(tree *triangle.Tree) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: geometry.NewBoundingBox(),
		AllEdges:    make([]EdgeInfo, 0),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, t := range tree.All() {
		for _, p := range t.Points() {
			result.BoundingBox.Extend(p)
		}

		depth := 0
		for p := t.Parent(); p != nil; p = p.Parent() {
			depth++
		}
		if depth > result.MaxDepth {
			result.MaxDepth = depth
		}

		area := t.Area()
		perimeter := t.Perimeter()
		result.TotalArea += area
		result.TotalPerimeter += perimeter
		result.Triangles = append(result.Triangles, TriangleInfo{
			ID:        t.ID(),
			Lengths:   t.Lengths(),
			Area:      area,
			Perimeter: perimeter,
			Depth:     depth,
		})

		for edge := geometry.EdgeA; edge <= geometry.EdgeC; edge++ {
			start, end := t.EdgeLine(edge)
			length := t.Length(edge)

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      start,
				End:        end,
				Length:     length,
				TriangleID: t.ID(),
				Edge:       edge,
				Shared:     t.Child(edge) != nil,
			})

			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.TriangleCount = tree.Len()
	result.EdgeCount = len(result.AllEdges)
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	if result.EdgeCount > 0 {
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}
	if !result.BoundingBox.IsEmpty() {
		result.Dimensions = result.BoundingBox.Size()
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FormatVector formats a 2D point for display
func FormatVector(v geometry.Vector2) string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}
