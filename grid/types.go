package grid

import "github.com/katalvlaran/dijkstramap/core"

// Coord is a grid cell position. Grid builders key their returned
// coordinate-to-PointID map on Coord rather than a packed int so callers
// never need to know the grid's row-major stride.
type Coord struct {
	X, Y int
}

// Rect is the boundary-facing description of a grid region: an (X, Y)
// offset and a (Width, Height) extent, both in unsigned cell counts.
type Rect struct {
	X, Y          int
	Width, Height int
}

func allocatePoints(g *core.Graph, rect Rect, terrain core.TerrainType) map[Coord]core.PointID {
	out := make(map[Coord]core.PointID, rect.Width*rect.Height)
	next := core.PointID(0)

	for x := rect.X; x < rect.X+rect.Width; x++ {
		for y := rect.Y; y < rect.Y+rect.Height; y++ {
			id := g.GetAvailableID(next)
			g.AddPointReplace(id, terrain)
			out[Coord{X: x, Y: y}] = id
			next = id + 1
		}
	}

	return out
}
