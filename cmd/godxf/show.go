package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/philipparndt/godxf/pkg/analysis"
	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/philipparndt/godxf/pkg/triangle"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [file] [number...]",
	Short: "Display triangle geometry in detail",
	Long: `Show vertices, internal angles, centroid and connections for the
given triangles, or for every triangle when no number is given.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) {
	filename := args[0]
	tree := loadScene(filename)

	var triangles []*triangle.Triangle
	if len(args) == 1 {
		triangles = tree.All()
	} else {
		for _, arg := range args[1:] {
			number, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid triangle number %q\n", arg)
				os.Exit(1)
			}
			t, ok := tree.Get(number)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: no triangle %d in scene\n", number)
				os.Exit(1)
			}
			triangles = append(triangles, t)
		}
	}

	for i, t := range triangles {
		if i > 0 {
			fmt.Println()
		}
		printTriangle(t)
	}
}

func printTriangle(t *triangle.Triangle) {
	lengths := t.Lengths()
	points := t.Points()
	angles := t.InternalAngles()

	fmt.Printf("Triangle %d (%s)\n", t.ID(), t.Name())
	fmt.Printf("  Lengths: A=%.3f B=%.3f C=%.3f\n", lengths[0], lengths[1], lengths[2])
	fmt.Printf("  Vertices:\n")
	fmt.Printf("    CA: %s\n", analysis.FormatVector(points[0]))
	fmt.Printf("    AB: %s\n", analysis.FormatVector(points[1]))
	fmt.Printf("    BC: %s\n", analysis.FormatVector(points[2]))
	fmt.Printf("  Internal Angles: %.2f° %.2f° %.2f°\n", angles[0], angles[1], angles[2])
	fmt.Printf("  Centroid: %s\n", analysis.FormatVector(t.Centroid()))
	fmt.Printf("  Orientation: %.2f°\n", t.OrientationDeg())
	fmt.Printf("  Area: %.3f\n", t.Area())

	if parent := t.Parent(); parent != nil {
		edge, _ := t.ParentEdge()
		fmt.Printf("  Attached to: triangle %d edge %s\n", parent.ID(), edge)
	} else {
		fmt.Printf("  Attached to: none (root)\n")
	}

	for edge := geometry.EdgeA; edge <= geometry.EdgeC; edge++ {
		if child := t.Child(edge); child != nil {
			fmt.Printf("  Child on edge %s: triangle %d\n", edge, child.ID())
		}
	}
}
