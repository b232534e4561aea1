package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [file] [number]",
	Short: "Remove a leaf triangle from the scene",
	Long: `Remove a triangle from the scene. Only triangles without connected
children can be removed; the root cannot be removed.`,
	Args: cobra.ExactArgs(2),
	Run:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) {
	filename := args[0]

	number, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid triangle number %q\n", args[1])
		os.Exit(1)
	}

	tree := loadScene(filename)

	if err := tree.Remove(number); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	saveScene(filename, tree)
	fmt.Printf("Removed triangle %d\n", number)
}
