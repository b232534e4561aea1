package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/spf13/cobra"
)

var anglesCmd = &cobra.Command{
	Use:   "angles [a] [b] [c]",
	Short: "Compute the internal angles for three edge lengths",
	Long: `Check whether three edge lengths form a valid triangle and, if so,
print its internal angles, area and heights without touching any scene
file.`,
	Args: cobra.ExactArgs(3),
	Run:  runAngles,
}

func init() {
	rootCmd.AddCommand(anglesCmd)
}

func runAngles(cmd *cobra.Command, args []string) {
	lengths, err := parseLengths(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, b, c := lengths[0], lengths[1], lengths[2]
	if !geometry.IsValidTriangle(a, b, c) {
		fmt.Fprintf(os.Stderr, "Error: (%g, %g, %g) does not form a valid triangle\n", a, b, c)
		os.Exit(1)
	}

	angles := geometry.InternalAngles(a, b, c)

	fmt.Printf("Triangle (%g, %g, %g)\n", a, b, c)
	fmt.Printf("  Angle A (opposite a): %.4f°\n", angles[0])
	fmt.Printf("  Angle B (opposite b): %.4f°\n", angles[1])
	fmt.Printf("  Angle C (opposite c): %.4f°\n", angles[2])
	fmt.Printf("  Area: %.4f\n", geometry.Area(a, b, c))
	fmt.Printf("  Height on A: %.4f\n", geometry.Height(a, b, c, geometry.EdgeA))
	fmt.Printf("  Height on B: %.4f\n", geometry.Height(a, b, c, geometry.EdgeB))
	fmt.Printf("  Height on C: %.4f\n", geometry.Height(a, b, c, geometry.EdgeC))
}
