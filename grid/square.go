// File: square.go
// Role: Square grid builder — orthogonal and diagonal connectivity classes
// with independently tunable, independently disable-able weights.
package grid

import "github.com/katalvlaran/dijkstramap/core"

var orthogonalOffsets = [4]Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
var diagonalOffsets = [4]Coord{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}}

// squareConfig holds the resolved options for SquareGrid.
type squareConfig struct {
	orthogonalWeight core.Weight
	diagonalWeight   core.Weight
}

// SquareOption configures SquareGrid.
type SquareOption func(*squareConfig)

// WithOrthogonalWeight sets the weight of up/down/left/right connections.
// A weight that IsInfinite disables the entire connection class. Default is
// core.DefaultWeight.
func WithOrthogonalWeight(w core.Weight) SquareOption {
	return func(c *squareConfig) { c.orthogonalWeight = w }
}

// WithDiagonalWeight sets the weight of the four diagonal connections. A
// weight that IsInfinite disables the entire connection class. Default is
// core.WeightInfinity (diagonals off).
func WithDiagonalWeight(w core.Weight) SquareOption {
	return func(c *squareConfig) { c.diagonalWeight = w }
}

// SquareGrid allocates a width x height region of g at rect's offset, each
// cell carrying terrain, and connects orthogonal and/or diagonal neighbors
// per the resolved weights. It returns the coordinate-to-PointID map.
func SquareGrid(g *core.Graph, rect Rect, terrain core.TerrainType, opts ...SquareOption) map[Coord]core.PointID {
	cfg := squareConfig{
		orthogonalWeight: core.DefaultWeight,
		diagonalWeight:   core.WeightInfinity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	positions := allocatePoints(g, rect, terrain)

	if !cfg.orthogonalWeight.IsInfinite() {
		connectClass(g, positions, orthogonalOffsets[:], cfg.orthogonalWeight)
	}
	if !cfg.diagonalWeight.IsInfinite() {
		connectClass(g, positions, diagonalOffsets[:], cfg.diagonalWeight)
	}

	return positions
}

func connectClass(g *core.Graph, positions map[Coord]core.PointID, offsets []Coord, weight core.Weight) {
	for pos, id := range positions {
		for _, d := range offsets {
			neighbor := Coord{X: pos.X + d.X, Y: pos.Y + d.Y}
			neighborID, ok := positions[neighbor]
			if !ok {
				continue
			}
			// Unidirectional per visit; the neighbor's own pass lays the
			// opposite edge, producing a fully bidirectional graph.
			_ = g.ConnectPoints(id, neighborID, weight, false)
		}
	}
}
