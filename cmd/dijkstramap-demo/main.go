// Command dijkstramap-demo exercises the core engine from the command
// line: build a grid, recalculate from an origin, print the cost field.
// The core package stays free of CLI/logging concerns; everything host-
// facing lives here.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstramap/core"
	"github.com/katalvlaran/dijkstramap/grid"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dijkstramap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dijkstramap v0.0.0-rc")
	},
}

var (
	gridWidth, gridHeight int
	gridOriginX           int
	diagonalCost          float64
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Build a square grid, recalculate from its center, and print the cost field",
	Run:   runGrid,
}

func init() {
	gridCmd.Flags().IntVar(&gridWidth, "width", 5, "grid width")
	gridCmd.Flags().IntVar(&gridHeight, "height", 5, "grid height")
	gridCmd.Flags().IntVar(&gridOriginX, "origin-x", 0, "grid offset X")
	gridCmd.Flags().Float64Var(&diagonalCost, "diagonal-cost", 0, "diagonal connection weight; 0 disables diagonals")
}

func runGrid(cmd *cobra.Command, args []string) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	g := core.NewGraph()
	opts := []grid.SquareOption{}
	if diagonalCost > 0 {
		opts = append(opts, grid.WithDiagonalWeight(core.Weight(diagonalCost)))
	}

	rect := grid.Rect{X: gridOriginX, Width: gridWidth, Height: gridHeight}
	positions := grid.SquareGrid(g, rect, core.TerrainDefault, opts...)
	slog.Info("grid built", "width", gridWidth, "height", gridHeight, "points", len(positions))

	center := grid.Coord{X: gridOriginX + gridWidth/2, Y: gridHeight / 2}
	originID, ok := positions[center]
	if !ok {
		slog.Error("center coordinate not in grid", "center", center)
		os.Exit(1)
	}

	g.Recalculate([]core.PointID{originID})
	slog.Info("recalculated", "origin", originID)

	for y := 0; y < gridHeight; y++ {
		for x := gridOriginX; x < gridOriginX+gridWidth; x++ {
			id := positions[grid.Coord{X: x, Y: y}]
			fmt.Printf("%4.0f", float64(g.GetCostAtPoint(id)))
		}
		fmt.Println()
	}
}

func main() {
	rootCmd := cobra.Command{Use: "dijkstramap-demo"}
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(gridCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
