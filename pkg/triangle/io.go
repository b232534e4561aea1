package triangle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/godxf/pkg/geometry"
)

// pointJSON is the on-disk form of a 2D point
type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// triangleJSON is the on-disk form of one triangle. Derived state
// (points, angles, centroid) is written for the benefit of other
// consumers of the file but recomputed on load; lengths, pose and the
// connection links are the source of truth.
type triangleJSON struct {
	Number         int          `json:"number"`
	Name           string       `json:"name"`
	Lengths        [3]float64   `json:"lengths"`
	Points         [3]pointJSON `json:"points"`
	AngleDeg       float64      `json:"angle_deg"`
	InternalAngles [3]float64   `json:"internal_angles_deg"`
	CenterPoint    pointJSON    `json:"center_point"`
	ConnectionSide int          `json:"connection_side"`
	ParentNumber   int          `json:"parent_number"`
	Children       [3]int       `json:"children"`
}

// SaveScene writes every triangle in the tree as a JSON array, ordered
// by id. Parent and child references are stored by number, -1 meaning
// none.
func SaveScene(w io.Writer, tree *Tree) error {
	records := make([]triangleJSON, 0, tree.Len())
	for _, t := range tree.All() {
		rec := triangleJSON{
			Number:         t.id,
			Name:           t.Name(),
			Lengths:        t.lengths,
			AngleDeg:       t.orientationDeg,
			InternalAngles: t.internalAngles,
			CenterPoint:    pointJSON{t.centroid.X, t.centroid.Y},
			ConnectionSide: -1,
			ParentNumber:   -1,
			Children:       [3]int{-1, -1, -1},
		}
		for i, p := range t.points {
			rec.Points[i] = pointJSON{p.X, p.Y}
		}
		if t.parent != nil {
			rec.ParentNumber = t.parent.id
			rec.ConnectionSide = int(t.parentEdge)
		}
		for i, child := range t.children {
			if child != nil {
				rec.Children[i] = child.id
			}
		}
		records = append(records, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	return nil
}

// LoadScene reads a tree previously written by SaveScene. Nodes are
// constructed first and relinked by number in a second pass; derived
// geometry is recomputed from lengths and pose rather than trusted
// from the file.
func LoadScene(r io.Reader) (*Tree, error) {
	var records []triangleJSON
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("scene contains no triangles")
	}

	tree := &Tree{
		nodes:  make(map[int]*Triangle, len(records)),
		nextID: 1,
	}

	// First pass: construct every node from its own data.
	for _, rec := range records {
		if !geometry.IsValidTriangle(rec.Lengths[0], rec.Lengths[1], rec.Lengths[2]) {
			return nil, fmt.Errorf("triangle %d lengths (%g, %g, %g): %w",
				rec.Number, rec.Lengths[0], rec.Lengths[1], rec.Lengths[2], ErrInvalidLengths)
		}
		if _, exists := tree.nodes[rec.Number]; exists {
			return nil, fmt.Errorf("duplicate triangle number %d", rec.Number)
		}
		base := geometry.NewVector2(rec.Points[0].X, rec.Points[0].Y)
		t := newTriangle(rec.Number, rec.Lengths, base, rec.AngleDeg)
		tree.nodes[rec.Number] = t
		if rec.Number >= tree.nextID {
			tree.nextID = rec.Number + 1
		}
	}

	// Second pass: restore the connection links.
	for _, rec := range records {
		t := tree.nodes[rec.Number]
		if rec.ParentNumber < 0 {
			if tree.root != nil {
				return nil, fmt.Errorf("scene has more than one root (%d and %d)",
					tree.root.id, rec.Number)
			}
			tree.root = t
			continue
		}

		parent, ok := tree.nodes[rec.ParentNumber]
		if !ok {
			return nil, fmt.Errorf("triangle %d parent %d: %w",
				rec.Number, rec.ParentNumber, ErrNotFound)
		}
		edge := geometry.Edge(rec.ConnectionSide)
		if !edge.Valid() {
			return nil, fmt.Errorf("triangle %d connection side %d: %w",
				rec.Number, rec.ConnectionSide, ErrInvalidEdge)
		}
		if parent.children[edge] != nil && parent.children[edge] != t {
			return nil, fmt.Errorf("triangle %d edge %s: %w",
				parent.id, edge, ErrEdgeOccupied)
		}
		t.parent = parent
		t.parentEdge = edge
		parent.children[edge] = t
	}

	if tree.root == nil {
		return nil, fmt.Errorf("scene has no root triangle")
	}
	if reached := countReachable(tree.root); reached != len(tree.nodes) {
		return nil, fmt.Errorf("scene has %d triangle(s) not connected to root %d (cyclic or orphaned parent links)",
			len(tree.nodes)-reached, tree.root.id)
	}

	Logger().Debug("scene loaded", "triangles", tree.Len(), "root", tree.root.id)
	return tree, nil
}

// countReachable walks the child links from t and returns the subtree
// size. Nodes whose parent chain never reaches the root, such as a
// cycle of triangles pointing at each other, are not counted.
func countReachable(t *Triangle) int {
	n := 1
	for _, child := range t.children {
		if child != nil {
			n += countReachable(child)
		}
	}
	return n
}

// SaveSceneFile writes the tree to a file
func SaveSceneFile(path string, tree *Tree) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return SaveScene(file, tree)
}

// LoadSceneFile reads a tree from a file
func LoadSceneFile(path string) (*Tree, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadScene(file)
}
