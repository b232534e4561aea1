package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/godxf/pkg/geometry"
	"github.com/philipparndt/godxf/pkg/triangle"
	"github.com/spf13/cobra"
)

var (
	newBaseX float64
	newBaseY float64
	newAngle float64
)

var newCmd = &cobra.Command{
	Use:   "new [file] [a] [b] [c]",
	Short: "Create a new scene with a root triangle",
	Long: `Create a scene file containing a single root triangle with the given
edge lengths, anchored at the base point with the CA→AB edge along the
orientation angle.`,
	Args: cobra.ExactArgs(4),
	Run:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().Float64Var(&newBaseX, "base-x", 0, "Base point X coordinate")
	newCmd.Flags().Float64Var(&newBaseY, "base-y", 0, "Base point Y coordinate")
	newCmd.Flags().Float64Var(&newAngle, "angle", triangle.DefaultOrientationDeg, "Orientation of the CA→AB edge in degrees")
}

func runNew(cmd *cobra.Command, args []string) {
	filename := args[0]

	lengths, err := parseLengths(args[1:4])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tree, err := triangle.NewTree(lengths, geometry.NewVector2(newBaseX, newBaseY), newAngle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	saveScene(filename, tree)
	fmt.Printf("Created %s with root triangle %d (%.1f, %.1f, %.1f)\n",
		filename, tree.Root().ID(), lengths[0], lengths[1], lengths[2])
}
