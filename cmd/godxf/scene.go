package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/philipparndt/godxf/pkg/triangle"
)

// loadScene reads a scene file or exits with an error message
func loadScene(path string) *triangle.Tree {
	tree, err := triangle.LoadSceneFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	return tree
}

// saveScene writes a scene file or exits with an error message
func saveScene(path string, tree *triangle.Tree) {
	if err := triangle.SaveSceneFile(path, tree); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving scene: %v\n", err)
		os.Exit(1)
	}
}

// parseLengths converts argument strings to edge lengths
func parseLengths(args []string) ([3]float64, error) {
	var lengths [3]float64
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return lengths, fmt.Errorf("invalid length %q", arg)
		}
		lengths[i] = value
	}
	return lengths, nil
}

// parseEdge accepts an edge label ("A", "B", "C") or index ("0".."2")
func parseEdge(s string) (geometry.Edge, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "0":
		return geometry.EdgeA, nil
	case "B", "1":
		return geometry.EdgeB, nil
	case "C", "2":
		return geometry.EdgeC, nil
	}
	return 0, fmt.Errorf("invalid edge %q (use A, B, C or 0, 1, 2)", s)
}
