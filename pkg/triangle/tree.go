package triangle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/philipparndt/godxf/pkg/geometry"
)

// DefaultOrientationDeg is the CA→AB direction given to a root
// triangle when the caller does not care: the first triangle grows
// leftward from its base point.
const DefaultOrientationDeg = 180.0

var (
	// ErrInvalidLengths reports lengths that are non-positive or
	// violate the triangle inequality.
	ErrInvalidLengths = errors.New("lengths do not form a valid triangle")

	// ErrEdgeOccupied reports an attach attempt on an edge that
	// already holds a child.
	ErrEdgeOccupied = errors.New("edge already has a connected triangle")

	// ErrNotFound reports a triangle id that does not resolve
	ErrNotFound = errors.New("no such triangle")

	// ErrInvalidEdge reports an edge index outside {0, 1, 2}
	ErrInvalidEdge = errors.New("invalid edge index")

	// ErrIsRoot reports a removal attempt on the tree root
	ErrIsRoot = errors.New("cannot remove the root triangle")

	// ErrHasChildren reports a removal attempt on a triangle that
	// still has triangles anchored to it.
	ErrHasChildren = errors.New("triangle has connected children")
)

// Tree owns a network of connected triangles. Ids are assigned
// monotonically starting at 1 and never reused within a tree.
//
// Every error returned by a mutating method is a precondition failure
// detected before any state change; a failed call leaves the tree
// exactly as it was. The tree itself is not safe for concurrent use:
// a multi-threaded host must serialize mutations and either serialize
// reads too or read from a snapshot.
type Tree struct {
	nodes  map[int]*Triangle
	root   *Triangle
	nextID int
}

// NewTree creates a tree seeded with a root triangle at the given base
// point and orientation. Returns ErrInvalidLengths if the lengths do
// not form a triangle.
func NewTree(lengths [3]float64, base geometry.Vector2, orientationDeg float64) (*Tree, error) {
	if !geometry.IsValidTriangle(lengths[0], lengths[1], lengths[2]) {
		return nil, fmt.Errorf("root triangle (%g, %g, %g): %w",
			lengths[0], lengths[1], lengths[2], ErrInvalidLengths)
	}

	tree := &Tree{
		nodes:  make(map[int]*Triangle),
		nextID: 1,
	}
	root := newTriangle(tree.nextID, lengths, base, orientationDeg)
	tree.nextID++
	tree.nodes[root.id] = root
	tree.root = root

	Logger().Debug("tree created",
		"root", root.id, "lengths", lengths, "base", base, "angle", orientationDeg)
	return tree, nil
}

// Root returns the root triangle
func (tr *Tree) Root() *Triangle {
	return tr.root
}

// Get returns the triangle with the given id
func (tr *Tree) Get(id int) (*Triangle, bool) {
	t, ok := tr.nodes[id]
	return t, ok
}

// Len returns the number of triangles in the tree
func (tr *Tree) Len() int {
	return len(tr.nodes)
}

// All returns every triangle ordered by id
func (tr *Tree) All() []*Triangle {
	all := make([]*Triangle, 0, len(tr.nodes))
	for _, t := range tr.nodes {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].id < all[j].id })
	return all
}

// CreateAtEdge attaches a new triangle to an edge of an existing one.
// The new triangle's base point is the end vertex of the parent edge
// and its orientation is the parent edge direction reversed, so its
// CA→AB edge runs back along the shared edge.
//
// The operation is purely additive: no existing triangle's geometry is
// touched. Fails with ErrNotFound, ErrInvalidEdge, ErrEdgeOccupied or
// ErrInvalidLengths, in that order of checking.
func (tr *Tree) CreateAtEdge(parentID int, edge geometry.Edge, lengths [3]float64) (*Triangle, error) {
	parent, ok := tr.nodes[parentID]
	if !ok {
		return nil, fmt.Errorf("parent %d: %w", parentID, ErrNotFound)
	}
	if !edge.Valid() {
		return nil, fmt.Errorf("edge %d: %w", int(edge), ErrInvalidEdge)
	}
	if parent.children[edge] != nil {
		return nil, fmt.Errorf("triangle %d edge %s: %w", parentID, edge, ErrEdgeOccupied)
	}
	if !geometry.IsValidTriangle(lengths[0], lengths[1], lengths[2]) {
		return nil, fmt.Errorf("lengths (%g, %g, %g): %w",
			lengths[0], lengths[1], lengths[2], ErrInvalidLengths)
	}

	base := geometry.ConnectionPoint(parent.points, edge)
	angle := geometry.ConnectionAngle(parent.points, edge)

	child := newTriangle(tr.nextID, lengths, base, angle)
	tr.nextID++
	child.parent = parent
	child.parentEdge = edge
	parent.children[edge] = child
	tr.nodes[child.id] = child

	Logger().Debug("triangle attached",
		"id", child.id, "parent", parentID, "edge", edge.String(),
		"base", base, "angle", angle)
	return child, nil
}

// CreateAttached is like CreateAtEdge but inherits edge A from the
// parent: the new triangle's first length is the parent edge's length,
// so the shared edge always matches. Only edges B and C are supplied.
func (tr *Tree) CreateAttached(parentID int, edge geometry.Edge, b, c float64) (*Triangle, error) {
	parent, ok := tr.nodes[parentID]
	if !ok {
		return nil, fmt.Errorf("parent %d: %w", parentID, ErrNotFound)
	}
	if !edge.Valid() {
		return nil, fmt.Errorf("edge %d: %w", int(edge), ErrInvalidEdge)
	}
	return tr.CreateAtEdge(parentID, edge, [3]float64{parent.lengths[edge], b, c})
}

// UpdateAndPropagate changes a triangle's edge lengths and cascades
// the resulting pose change through every descendant, depth first. A
// child's own lengths are never altered; only its base point and
// orientation move to follow the parent's recomputed edge.
//
// The precondition check is atomic: on ErrNotFound or
// ErrInvalidLengths nothing has been mutated. On success the whole
// subtree is consistent; each descendant is visited exactly once and
// always after its parent.
func (tr *Tree) UpdateAndPropagate(id int, lengths [3]float64) error {
	t, ok := tr.nodes[id]
	if !ok {
		return fmt.Errorf("triangle %d: %w", id, ErrNotFound)
	}
	if !geometry.IsValidTriangle(lengths[0], lengths[1], lengths[2]) {
		return fmt.Errorf("lengths (%g, %g, %g): %w",
			lengths[0], lengths[1], lengths[2], ErrInvalidLengths)
	}

	t.lengths = lengths
	t.recompute()
	Logger().Debug("triangle updated", "id", id, "lengths", lengths)

	tr.propagate(t)
	return nil
}

// propagate re-anchors every child of t to t's current edge geometry
// and recurses. t's own geometry must already be final.
func (tr *Tree) propagate(t *Triangle) {
	for edge := geometry.EdgeA; edge <= geometry.EdgeC; edge++ {
		child := t.children[edge]
		if child == nil {
			continue
		}
		child.basePoint = geometry.ConnectionPoint(t.points, edge)
		child.orientationDeg = geometry.ConnectionAngle(t.points, edge)
		child.recompute()
		Logger().Debug("triangle re-anchored",
			"id", child.id, "parent", t.id, "edge", edge.String(),
			"base", child.basePoint, "angle", child.orientationDeg)
		tr.propagate(child)
	}
}

// Remove detaches a triangle from the tree. Only childless non-root
// triangles can be removed: removing a triangle with children would
// silently destroy its whole subtree, and re-parenting has no
// geometric meaning once the anchor edge is gone. Fails with
// ErrNotFound, ErrIsRoot or ErrHasChildren.
func (tr *Tree) Remove(id int) error {
	t, ok := tr.nodes[id]
	if !ok {
		return fmt.Errorf("triangle %d: %w", id, ErrNotFound)
	}
	if t.parent == nil {
		return fmt.Errorf("triangle %d: %w", id, ErrIsRoot)
	}
	if t.HasChildren() {
		return fmt.Errorf("triangle %d: %w", id, ErrHasChildren)
	}

	t.parent.children[t.parentEdge] = nil
	t.parent = nil
	delete(tr.nodes, id)

	Logger().Debug("triangle removed", "id", id)
	return nil
}
