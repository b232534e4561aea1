// Package viewer renders a triangle scene as a fyne canvas widget
// with pan, zoom and edge selection.
package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/godxf/pkg/entity"
	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/philipparndt/godxf/pkg/triangle"
)

var (
	outlineColor  = color.RGBA{0, 100, 200, 255}
	selectedColor = color.RGBA{255, 80, 0, 255}
	labelColor    = color.RGBA{40, 40, 40, 255}
)

// SceneRenderer draws a triangle tree. It supports drag panning,
// scroll zooming and tapping near an edge midpoint to select that
// edge.
type SceneRenderer struct {
	widget.BaseWidget
	tree   *triangle.Tree
	camera *Camera

	lines  []*canvas.Line
	labels []*canvas.Text

	selectedID   int
	selectedEdge geometry.Edge
	hasSelection bool

	dragStart  *fyne.Position
	isDragging bool
	width      float64
	height     float64

	onEdgeSelect func(triangleID int, edge geometry.Edge)
}

// NewSceneRenderer creates a renderer for the given tree. The tree may
// be nil; call SetTree once a scene exists.
func NewSceneRenderer(tree *triangle.Tree) *SceneRenderer {
	r := &SceneRenderer{
		tree:   tree,
		camera: NewCamera(),
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetTree replaces the rendered tree and clears the selection
func (r *SceneRenderer) SetTree(tree *triangle.Tree) {
	r.tree = tree
	r.hasSelection = false
	r.Render(r.width, r.height)
}

// SetOnEdgeSelect sets the callback for when an edge is selected
func (r *SceneRenderer) SetOnEdgeSelect(callback func(triangleID int, edge geometry.Edge)) {
	r.onEdgeSelect = callback
}

// Selection returns the currently selected triangle edge
func (r *SceneRenderer) Selection() (triangleID int, edge geometry.Edge, ok bool) {
	return r.selectedID, r.selectedEdge, r.hasSelection
}

// ClearSelection clears the edge selection
func (r *SceneRenderer) ClearSelection() {
	r.hasSelection = false
	r.Render(r.width, r.height)
}

// FitToView positions the camera so the whole scene is visible
func (r *SceneRenderer) FitToView() {
	if r.tree == nil {
		return
	}
	bbox := geometry.NewBoundingBox()
	for _, t := range r.tree.All() {
		for _, p := range t.Points() {
			bbox.Extend(p)
		}
	}
	r.camera.FitBounds(bbox, r.width, r.height)
	r.Render(r.width, r.height)
}

// CreateRenderer creates the fyne renderer for the widget
func (r *SceneRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &sceneWidgetRenderer{renderer: r}
}

// Render rebuilds the canvas objects for the current viewport
func (r *SceneRenderer) Render(width, height float64) {
	r.width = width
	r.height = height
	r.lines = r.lines[:0]
	r.labels = r.labels[:0]

	if r.tree == nil || width <= 0 || height <= 0 {
		r.Refresh()
		return
	}

	for _, t := range r.tree.All() {
		for edge := geometry.EdgeA; edge <= geometry.EdgeC; edge++ {
			start, end := t.EdgeLine(edge)

			col := outlineColor
			strokeWidth := float32(1)
			if r.hasSelection && t.ID() == r.selectedID && edge == r.selectedEdge {
				col = selectedColor
				strokeWidth = 3
			}

			x1, y1 := r.camera.Project(start, width, height)
			x2, y2 := r.camera.Project(end, width, height)

			line := canvas.NewLine(col)
			line.StrokeWidth = strokeWidth
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			r.lines = append(r.lines, line)
		}

		for _, e := range entity.FromTriangle(t, entity.DefaultLabelOptions()) {
			if e.Kind != entity.KindText {
				continue
			}
			x, y := r.camera.Project(e.Text.Position, width, height)
			label := canvas.NewText(e.Text.Value, labelColor)
			label.TextSize = 12
			label.Move(fyne.NewPos(float32(x), float32(y)))
			r.labels = append(r.labels, label)
		}
	}

	r.Refresh()
}

// Dragged pans the view so the scene follows the pointer
func (r *SceneRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := float64(event.Position.X - r.dragStart.X)
		deltaY := float64(event.Position.Y - r.dragStart.Y)
		r.camera.Pan(deltaX, deltaY)
		r.Render(r.width, r.height)
	}
	r.dragStart = &event.Position
	r.isDragging = true
}

// DragEnd ends a pan drag
func (r *SceneRenderer) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// Scrolled zooms the view
func (r *SceneRenderer) Scrolled(event *fyne.ScrollEvent) {
	factor := 1.0 + float64(event.Scrolled.DY)*0.002
	r.camera.Zoom(factor)
	r.Render(r.width, r.height)
}

// Tapped selects the edge whose midpoint is nearest the tap, within a
// 20 pixel radius.
func (r *SceneRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging || r.tree == nil {
		return
	}

	screenX := float64(event.Position.X)
	screenY := float64(event.Position.Y)

	minDist := math.MaxFloat64
	var nearestID int
	var nearestEdge geometry.Edge

	for _, t := range r.tree.All() {
		for edge := geometry.EdgeA; edge <= geometry.EdgeC; edge++ {
			mid := t.EdgeMidpoint(edge)
			x, y := r.camera.Project(mid, r.width, r.height)
			dist := math.Hypot(x-screenX, y-screenY)
			if dist < minDist {
				minDist = dist
				nearestID = t.ID()
				nearestEdge = edge
			}
		}
	}

	if minDist < 20 {
		r.selectedID = nearestID
		r.selectedEdge = nearestEdge
		r.hasSelection = true
		r.Render(r.width, r.height)

		if r.onEdgeSelect != nil {
			r.onEdgeSelect(nearestID, nearestEdge)
		}
	}
}

// sceneWidgetRenderer implements fyne.WidgetRenderer
type sceneWidgetRenderer struct {
	renderer *SceneRenderer
	objects  []fyne.CanvasObject
}

func (s *sceneWidgetRenderer) Layout(size fyne.Size) {
	s.renderer.Render(float64(size.Width), float64(size.Height))
}

func (s *sceneWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (s *sceneWidgetRenderer) Refresh() {
	s.objects = s.objects[:0]
	for _, line := range s.renderer.lines {
		s.objects = append(s.objects, line)
	}
	for _, label := range s.renderer.labels {
		s.objects = append(s.objects, label)
	}
	canvas.Refresh(s.renderer)
}

func (s *sceneWidgetRenderer) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *sceneWidgetRenderer) Destroy() {}
