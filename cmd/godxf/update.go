package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [file] [number] [a] [b] [c]",
	Short: "Change a triangle's edge lengths and repropagate",
	Long: `Change the edge lengths of an existing triangle. Every triangle
anchored to it, directly or transitively, is moved to follow the new
geometry; their own edge lengths are unchanged. Invalid lengths are
rejected before anything is modified.`,
	Args: cobra.ExactArgs(5),
	Run:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	filename := args[0]

	number, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid triangle number %q\n", args[1])
		os.Exit(1)
	}

	lengths, err := parseLengths(args[2:5])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tree := loadScene(filename)

	if err := tree.UpdateAndPropagate(number, lengths); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	saveScene(filename, tree)
	fmt.Printf("Updated triangle %d to (%.1f, %.1f, %.1f)\n",
		number, lengths[0], lengths[1], lengths[2])
}
