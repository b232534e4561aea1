package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/godxf/pkg/triangle"
	"github.com/philipparndt/godxf/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "godxf",
	Short: "A CLI tool for building and inspecting triangle network scenes",
	Long: `godxf builds 2D scenes from connected triangles. Each triangle is
defined by its three edge lengths; new triangles attach to an edge of
an existing one and follow it when its dimensions change. Scenes are
stored as JSON files.`,
	Version: version.GetFullVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			triangle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
