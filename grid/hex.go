// File: hex.go
// Role: Pointy-top hexagonal grid builder — one six-way connection class
// whose offset set depends on column parity.
package grid

import "github.com/katalvlaran/dijkstramap/core"

// hexOffsets[0] is used for even-X columns, hexOffsets[1] for odd-X columns.
var hexOffsets = [2][6]Coord{
	{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}},
	{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

type hexConfig struct {
	weight core.Weight
}

// HexOption configures HexGrid.
type HexOption func(*hexConfig)

// WithHexWeight sets the weight shared by all six connections per cell. A
// weight that IsInfinite disables hex connectivity entirely, leaving only
// allocated, unconnected points. Default is core.DefaultWeight.
func WithHexWeight(w core.Weight) HexOption {
	return func(c *hexConfig) { c.weight = w }
}

// HexGrid allocates a width x height pointy-top hex region of g at rect's
// offset, each cell carrying terrain, and connects each cell to its six
// neighbors per column parity. It returns the coordinate-to-PointID map.
func HexGrid(g *core.Graph, rect Rect, terrain core.TerrainType, opts ...HexOption) map[Coord]core.PointID {
	cfg := hexConfig{weight: core.DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	positions := allocatePoints(g, rect, terrain)
	if cfg.weight.IsInfinite() {
		return positions
	}

	for pos, id := range positions {
		parity := ((pos.X % 2) + 2) % 2
		for _, d := range hexOffsets[parity] {
			neighbor := Coord{X: pos.X + d.X, Y: pos.Y + d.Y}
			neighborID, ok := positions[neighbor]
			if !ok {
				continue
			}
			_ = g.ConnectPoints(id, neighborID, cfg.weight, false)
		}
	}

	return positions
}
