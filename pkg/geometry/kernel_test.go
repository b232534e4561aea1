package geometry

import (
	"math"
	"testing"
)

func TestIsValidTriangle(t *testing.T) {
	if !IsValidTriangle(60, 80, 100) {
		t.Error("IsValidTriangle failed: (60, 80, 100) should be valid")
	}
	if !IsValidTriangle(1, 1, 1) {
		t.Error("IsValidTriangle failed: (1, 1, 1) should be valid")
	}

	// Violates the triangle inequality
	if IsValidTriangle(10, 20, 50) {
		t.Error("IsValidTriangle failed: (10, 20, 50) should be invalid")
	}
	// Degenerate: equality is not enough
	if IsValidTriangle(1, 2, 3) {
		t.Error("IsValidTriangle failed: (1, 2, 3) should be invalid")
	}
	// Non-positive lengths
	if IsValidTriangle(60, -10, 80) {
		t.Error("IsValidTriangle failed: negative length should be invalid")
	}
	if IsValidTriangle(0, 1, 1) {
		t.Error("IsValidTriangle failed: zero length should be invalid")
	}
}

func TestInternalAngles(t *testing.T) {
	// 3:4:5 right triangle
	angles := InternalAngles(60, 80, 100)

	if math.Abs(angles[0]-36.87) > 0.01 {
		t.Errorf("Angle A failed: expected 36.87, got %v", angles[0])
	}
	if math.Abs(angles[1]-53.13) > 0.01 {
		t.Errorf("Angle B failed: expected 53.13, got %v", angles[1])
	}
	if math.Abs(angles[2]-90.0) > 0.01 {
		t.Errorf("Angle C failed: expected 90.0, got %v", angles[2])
	}
}

func TestInternalAnglesEquilateral(t *testing.T) {
	angles := InternalAngles(50, 50, 50)

	for i, angle := range angles {
		if math.Abs(angle-60.0) > 1e-10 {
			t.Errorf("Angle %d failed: expected 60.0, got %v", i, angle)
		}
	}
}

func TestInternalAnglesSum(t *testing.T) {
	cases := [][3]float64{
		{60, 80, 100},
		{1, 1, 1},
		{3, 4, 5},
		{100, 100, 1},       // needle
		{5, 5, 9.999999},    // near-degenerate
		{123.4, 234.5, 345}, // arbitrary
	}

	for _, c := range cases {
		if !IsValidTriangle(c[0], c[1], c[2]) {
			t.Fatalf("test case (%v, %v, %v) is not a valid triangle", c[0], c[1], c[2])
		}
		angles := InternalAngles(c[0], c[1], c[2])
		sum := angles[0] + angles[1] + angles[2]
		if math.Abs(sum-180.0) > 1e-6 {
			t.Errorf("Angle sum for (%v, %v, %v) failed: expected 180, got %v", c[0], c[1], c[2], sum)
		}
	}
}

func TestArea(t *testing.T) {
	area := Area(60, 80, 100)
	expected := 2400.0 // right triangle: (60 * 80) / 2

	if math.Abs(area-expected) > 1e-6 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestAreaDegenerate(t *testing.T) {
	if area := Area(1, 2, 3); area != 0 {
		t.Errorf("Area of degenerate triangle failed: expected 0, got %v", area)
	}
	if area := Area(10, 20, 50); area != 0 {
		t.Errorf("Area of impossible triangle failed: expected 0, got %v", area)
	}
}

func TestHeight(t *testing.T) {
	// Altitude on edge A of the 60-80-100 right triangle
	h := Height(60, 80, 100, EdgeA)
	expected := 80.0 // 2 * 2400 / 60

	if math.Abs(h-expected) > 1e-6 {
		t.Errorf("Height failed: expected %v, got %v", expected, h)
	}
}

func TestConstructPoints(t *testing.T) {
	// Base (0,0), orientation 180°: the reference configuration
	points, centroid := ConstructPoints(NewVector2(0, 0), 60, 80, 100, 180)

	if points[0] != NewVector2(0, 0) {
		t.Errorf("CA failed: expected (0, 0), got %v", points[0])
	}
	if math.Abs(points[1].X-(-60)) > 0.1 || math.Abs(points[1].Y-0) > 0.1 {
		t.Errorf("AB failed: expected (-60, 0), got %v", points[1])
	}
	if math.Abs(points[2].X-(-60)) > 0.1 || math.Abs(points[2].Y-(-80)) > 0.1 {
		t.Errorf("BC failed: expected (-60, -80), got %v", points[2])
	}

	expectedCentroid := NewVector2(-40, -80.0/3.0)
	if math.Abs(centroid.X-expectedCentroid.X) > 0.1 || math.Abs(centroid.Y-expectedCentroid.Y) > 0.1 {
		t.Errorf("Centroid failed: expected %v, got %v", expectedCentroid, centroid)
	}
}

func TestConstructPointsUpdatedLengths(t *testing.T) {
	// Reference vectors: base (10,20), orientation 90°, lengths
	// (60, 70, 90).
	points, _ := ConstructPoints(NewVector2(10, 20), 60, 70, 90, 90)

	if math.Abs(points[1].X-10) > 0.1 || math.Abs(points[1].Y-80) > 0.1 {
		t.Errorf("AB failed: expected (10, 80), got %v", points[1])
	}
	if math.Abs(points[2].X-(-59.92)) > 0.1 || math.Abs(points[2].Y-76.67) > 0.1 {
		t.Errorf("BC failed: expected (-59.92, 76.67), got %v", points[2])
	}
}

func TestConstructPointsSideLengthFidelity(t *testing.T) {
	cases := []struct {
		base    Vector2
		a, b, c float64
		angle   float64
	}{
		{NewVector2(0, 0), 60, 80, 100, 180},
		{NewVector2(10, 20), 60, 70, 90, 90},
		{NewVector2(-5, 3), 1, 1, 1, 0},
		{NewVector2(100, -200), 33.3, 44.4, 55.5, 123.456},
		{NewVector2(0, 0), 100, 100, 1, 270},
		{NewVector2(7, 7), 5, 5, 9.9999, 45},
	}

	for _, tc := range cases {
		points, _ := ConstructPoints(tc.base, tc.a, tc.b, tc.c, tc.angle)

		distA := points[0].Distance(points[1])
		distB := points[1].Distance(points[2])
		distC := points[2].Distance(points[0])

		if math.Abs(distA-tc.a)/tc.a > 1e-6 {
			t.Errorf("(%v, %v, %v) at %v°: |CA-AB| = %v, want %v", tc.a, tc.b, tc.c, tc.angle, distA, tc.a)
		}
		if math.Abs(distB-tc.b)/tc.b > 1e-6 {
			t.Errorf("(%v, %v, %v) at %v°: |AB-BC| = %v, want %v", tc.a, tc.b, tc.c, tc.angle, distB, tc.b)
		}
		if math.Abs(distC-tc.c)/tc.c > 1e-6 {
			t.Errorf("(%v, %v, %v) at %v°: |BC-CA| = %v, want %v", tc.a, tc.b, tc.c, tc.angle, distC, tc.c)
		}
	}
}

func TestConstructPointsDeterministic(t *testing.T) {
	base := NewVector2(12.5, -7.25)
	points1, centroid1 := ConstructPoints(base, 60, 80, 100, 33)
	points2, centroid2 := ConstructPoints(base, 60, 80, 100, 33)

	if points1 != points2 {
		t.Errorf("ConstructPoints not deterministic: %v != %v", points1, points2)
	}
	if centroid1 != centroid2 {
		t.Errorf("Centroid not deterministic: %v != %v", centroid1, centroid2)
	}
}

func TestEdgeEndpoints(t *testing.T) {
	points := [3]Vector2{
		NewVector2(0, 0),  // CA
		NewVector2(1, 0),  // AB
		NewVector2(0, 1),  // BC
	}

	cases := []struct {
		edge       Edge
		start, end Vector2
	}{
		{EdgeA, points[0], points[1]},
		{EdgeB, points[1], points[2]},
		{EdgeC, points[2], points[0]},
	}

	for _, c := range cases {
		start, end := EdgeEndpoints(points, c.edge)
		if start != c.start || end != c.end {
			t.Errorf("EdgeEndpoints(%s) failed: expected %v → %v, got %v → %v",
				c.edge, c.start, c.end, start, end)
		}
	}
}

func TestConnectionPoint(t *testing.T) {
	points := [3]Vector2{
		NewVector2(0, 0),
		NewVector2(1, 0),
		NewVector2(0, 1),
	}

	// The connection point is the end vertex of the edge
	if p := ConnectionPoint(points, EdgeA); p != points[1] {
		t.Errorf("ConnectionPoint(A) failed: expected %v, got %v", points[1], p)
	}
	if p := ConnectionPoint(points, EdgeB); p != points[2] {
		t.Errorf("ConnectionPoint(B) failed: expected %v, got %v", points[2], p)
	}
	if p := ConnectionPoint(points, EdgeC); p != points[0] {
		t.Errorf("ConnectionPoint(C) failed: expected %v, got %v", points[0], p)
	}
}

func TestConnectionAngle(t *testing.T) {
	// Edge A runs along +X, so its connection angle is 180°
	points := [3]Vector2{
		NewVector2(0, 0),
		NewVector2(1, 0),
		NewVector2(0, 1),
	}

	if angle := ConnectionAngle(points, EdgeA); math.Abs(angle-180) > 1e-10 {
		t.Errorf("ConnectionAngle(A) failed: expected 180, got %v", angle)
	}

	// Edge B runs along (-1, 1): direction 135°, reversed 315°
	if angle := ConnectionAngle(points, EdgeB); math.Abs(angle-315) > 1e-10 {
		t.Errorf("ConnectionAngle(B) failed: expected 315, got %v", angle)
	}

	// Edge C runs along (0, -1): direction 270°, reversed 90°
	if angle := ConnectionAngle(points, EdgeC); math.Abs(angle-90) > 1e-10 {
		t.Errorf("ConnectionAngle(C) failed: expected 90, got %v", angle)
	}
}

func TestConnectionAngleNormalized(t *testing.T) {
	// Construct triangles at many orientations and check the range
	for angle := 0.0; angle < 360; angle += 7.3 {
		points, _ := ConstructPoints(NewVector2(0, 0), 60, 80, 100, angle)
		for edge := EdgeA; edge <= EdgeC; edge++ {
			got := ConnectionAngle(points, edge)
			if got < 0 || got >= 360 {
				t.Errorf("ConnectionAngle(%s) at %v° out of range: %v", edge, angle, got)
			}
		}
	}
}

func TestEdgeString(t *testing.T) {
	if EdgeA.String() != "A" || EdgeB.String() != "B" || EdgeC.String() != "C" {
		t.Error("Edge String failed")
	}
	if Edge(5).String() != "?" {
		t.Errorf("Edge String for invalid edge failed: got %q", Edge(5).String())
	}
}

func TestEdgeValid(t *testing.T) {
	if !EdgeA.Valid() || !EdgeB.Valid() || !EdgeC.Valid() {
		t.Error("Edge Valid failed for valid edges")
	}
	if Edge(-1).Valid() || Edge(3).Valid() {
		t.Error("Edge Valid failed for out-of-range edges")
	}
}
