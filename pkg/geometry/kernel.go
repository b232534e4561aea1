package geometry

import "math"

// Edge identifies one edge of a triangle. The three edges are labeled
// after the vertex pair they connect: edge A runs CA→AB, edge B runs
// AB→BC, and edge C runs BC→CA.
type Edge int

const (
	EdgeA Edge = iota // CA→AB
	EdgeB             // AB→BC
	EdgeC             // BC→CA
)

// Valid reports whether e names one of the three triangle edges
func (e Edge) Valid() bool {
	return e >= EdgeA && e <= EdgeC
}

// String returns the edge label ("A", "B" or "C")
func (e Edge) String() string {
	switch e {
	case EdgeA:
		return "A"
	case EdgeB:
		return "B"
	case EdgeC:
		return "C"
	}
	return "?"
}

// edgeEndpointIndices maps each edge to the vertex indices of its
// start and end points in a [CA, AB, BC] vertex array. The mapping is
// fixed and never derived from geometry.
var edgeEndpointIndices = [3][2]int{
	{0, 1}, // edge A: CA→AB
	{1, 2}, // edge B: AB→BC
	{2, 0}, // edge C: BC→CA
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// IsValidTriangle reports whether three edge lengths form a valid
// triangle: all strictly positive and satisfying the strict triangle
// inequality on every pair.
func IsValidTriangle(a, b, c float64) bool {
	if a <= 0 || b <= 0 || c <= 0 {
		return false
	}
	return a+b > c && b+c > a && c+a > b
}

// InternalAngles computes the three internal angles in degrees from
// the edge lengths using the law of cosines. The angle at index 0 is
// opposite edge A, and so on. The cosine argument is clamped to
// [-1, 1] so that near-degenerate triangles produce 0° or 180° instead
// of NaN. For any valid triangle the angles sum to 180° within
// floating-point tolerance.
func InternalAngles(a, b, c float64) [3]float64 {
	var angles [3]float64
	if b*c > 0 {
		angles[0] = Degrees(math.Acos(clamp((b*b+c*c-a*a)/(2*b*c), -1, 1)))
	}
	if a*c > 0 {
		angles[1] = Degrees(math.Acos(clamp((a*a+c*c-b*b)/(2*a*c), -1, 1)))
	}
	if a*b > 0 {
		angles[2] = Degrees(math.Acos(clamp((a*a+b*b-c*c)/(2*a*b), -1, 1)))
	}
	return angles
}

// Area computes the triangle area from its edge lengths using Heron's
// formula. Returns 0 when the lengths do not form a triangle.
func Area(a, b, c float64) float64 {
	s := (a + b + c) / 2
	under := s * (s - a) * (s - b) * (s - c)
	if under <= 0 {
		return 0
	}
	return math.Sqrt(under)
}

// Height computes the altitude onto the given base edge from the
// opposite vertex. Returns 0 when the base length is zero.
func Height(a, b, c float64, base Edge) float64 {
	baseLength := [3]float64{a, b, c}[base]
	if baseLength <= 0 {
		return 0
	}
	return 2 * Area(a, b, c) / baseLength
}

// ConstructPoints builds the three vertices [CA, AB, BC] and the
// centroid of a triangle from its base vertex, its three edge lengths
// and the direction of the CA→AB edge in degrees.
//
// AB is placed at distance a from CA along orientationDeg. BC is found
// by walking the foot of its altitude along CA→AB and then offsetting
// by the altitude along the left-hand perpendicular. The resulting
// vertex distances reproduce a, b and c within floating-point
// tolerance.
//
// Callers must validate the lengths with IsValidTriangle first:
// ConstructPoints does not re-validate, and an impossible triangle
// yields a collapsed shape rather than an error. Square-root arguments
// that go negative from floating-point drift are clamped to zero.
func ConstructPoints(base Vector2, a, b, c, orientationDeg float64) (points [3]Vector2, centroid Vector2) {
	points[0] = base

	angleRad := Radians(orientationDeg)
	ab := base.Add(NewVector2(a*math.Cos(angleRad), a*math.Sin(angleRad)))
	points[1] = ab

	// Altitude from BC onto the CA→AB line, and the distance from CA
	// to the foot of that altitude.
	height := Height(a, b, c, EdgeA)
	footSq := c*c - height*height
	if footSq < 0 {
		footSq = 0
	}
	foot := math.Sqrt(footSq)

	dir := ab.Sub(base)
	if dir.Length() > 0 && a > 0 {
		unit := dir.Mul(1 / a)
		points[2] = base.Add(unit.Mul(foot)).Add(unit.Perp().Mul(height))
	} else {
		points[2] = ab
	}

	centroid = points[0].Add(points[1]).Add(points[2]).Mul(1.0 / 3.0)
	return points, centroid
}

// EdgeEndpoints returns the start and end vertex of the named edge in
// a [CA, AB, BC] vertex array. Edge A is CA→AB, edge B is AB→BC and
// edge C is BC→CA.
func EdgeEndpoints(points [3]Vector2, edge Edge) (start, end Vector2) {
	idx := edgeEndpointIndices[edge]
	return points[idx[0]], points[idx[1]]
}

// ConnectionPoint returns the base vertex for a triangle attached at
// the given edge: the end vertex of that edge.
func ConnectionPoint(points [3]Vector2, edge Edge) Vector2 {
	idx := edgeEndpointIndices[edge]
	return points[idx[1]]
}

// ConnectionAngle returns the CA→AB direction in degrees for a
// triangle attached at the given edge: the edge direction reversed,
// normalized to [0, 360).
func ConnectionAngle(points [3]Vector2, edge Edge) float64 {
	start, end := EdgeEndpoints(points, edge)
	return math.Mod(end.Sub(start).Angle()+180, 360)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
