package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/philipparndt/godxf/pkg/triangle"
	"github.com/spf13/cobra"
)

var (
	addParent  int
	addEdge    string
	addLengthA float64
)

var addCmd = &cobra.Command{
	Use:   "add [file] [b] [c]",
	Short: "Attach a new triangle to an edge of an existing one",
	Long: `Attach a new triangle to the selected edge of the parent triangle.
The new triangle's edge A is inherited from the parent edge so the
shared edge always matches; pass --length-a to override it. Only one
triangle can be attached per edge.`,
	Args: cobra.ExactArgs(3),
	Run:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().IntVarP(&addParent, "parent", "p", 1, "Parent triangle number")
	addCmd.Flags().StringVarP(&addEdge, "edge", "e", "A", "Parent edge to attach to (A, B or C)")
	addCmd.Flags().Float64Var(&addLengthA, "length-a", 0, "Override the inherited edge A length")
}

func runAdd(cmd *cobra.Command, args []string) {
	filename := args[0]

	b, errB := strconv.ParseFloat(args[1], 64)
	c, errC := strconv.ParseFloat(args[2], 64)
	if errB != nil || errC != nil {
		fmt.Fprintf(os.Stderr, "Error: lengths must be numbers, got %q %q\n", args[1], args[2])
		os.Exit(1)
	}

	edge, err := parseEdge(addEdge)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tree := loadScene(filename)

	var created *triangle.Triangle
	if cmd.Flags().Changed("length-a") {
		created, err = tree.CreateAtEdge(addParent, edge, [3]float64{addLengthA, b, c})
	} else {
		created, err = tree.CreateAttached(addParent, edge, b, c)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	saveScene(filename, tree)

	lengths := created.Lengths()
	fmt.Printf("Attached triangle %d (%.1f, %.1f, %.1f) to triangle %d edge %s\n",
		created.ID(), lengths[0], lengths[1], lengths[2], addParent, edge)
}
