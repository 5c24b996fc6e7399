package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstramap/core"
)

func TestRecalculate_ChainCosts(t *testing.T) {
	g := buildChain(t, 5)
	g.Recalculate([]core.PointID{0})

	for i, want := range []core.Cost{0, 1, 2, 3, 4} {
		assert.Equal(t, want, g.GetCostAtPoint(core.PointID(i)))
	}
}

// TestRecalculate_TerrainWeighting mirrors a three-point chain where every
// point carries the same tagged terrain, weighted at 2.0: each edge's cost
// becomes weight * 0.5 * (2.0 + 2.0) = 2 * weight.
func TestRecalculate_TerrainWeighting(t *testing.T) {
	g := core.NewGraph()
	terrain := core.Tagged(1)
	for i := core.PointID(0); i <= 2; i++ {
		require.NoError(t, g.AddPoint(i, terrain))
	}
	require.NoError(t, g.ConnectPoints(0, 1, core.DefaultWeight, true))
	require.NoError(t, g.ConnectPoints(1, 2, core.DefaultWeight, true))

	g.Recalculate([]core.PointID{2}, core.WithTerrainWeights(map[core.TerrainType]core.Weight{
		terrain: 2.0,
	}))

	assert.Equal(t, core.Cost(0), g.GetCostAtPoint(2))
	assert.Equal(t, core.Cost(2), g.GetCostAtPoint(1))
	assert.Equal(t, core.Cost(4), g.GetCostAtPoint(0))
}

func TestRecalculate_UnmappedTaggedTerrainIsImpassable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddPoint(0, core.TerrainDefault))
	require.NoError(t, g.AddPoint(1, core.Tagged(3)))
	require.NoError(t, g.ConnectPoints(0, 1, core.DefaultWeight, true))

	g.Recalculate([]core.PointID{0})
	assert.Equal(t, core.CostInfinity, g.GetCostAtPoint(1))
}

func TestRecalculate_DefaultTerrainIgnoresMapping(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddPoint(0, core.TerrainDefault))
	require.NoError(t, g.AddPoint(1, core.TerrainDefault))
	require.NoError(t, g.ConnectPoints(0, 1, core.DefaultWeight, true))

	// Even with an entry attempting to reweight Default, Default always
	// costs DefaultWeight.
	g.Recalculate([]core.PointID{0}, core.WithTerrainWeights(map[core.TerrainType]core.Weight{
		core.TerrainDefault: 99,
	}))
	assert.Equal(t, core.Cost(1), g.GetCostAtPoint(1))
}

func TestRecalculate_DisabledPointNeverRelaxedInto(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddPoint(0, core.TerrainDefault))
	require.NoError(t, g.AddPoint(1, core.TerrainDefault))
	require.NoError(t, g.DisablePoint(1))
	require.NoError(t, g.ConnectPoints(0, 1, core.DefaultWeight, true))

	g.Recalculate([]core.PointID{0})
	assert.Equal(t, core.CostInfinity, g.GetCostAtPoint(1))
}

func TestRecalculate_DisabledOriginStillSettles(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddPoint(0, core.TerrainDefault))
	require.NoError(t, g.DisablePoint(0))

	g.Recalculate([]core.PointID{0})
	assert.Equal(t, core.Cost(0), g.GetCostAtPoint(0))
}

func TestRecalculate_MaxCostPrunesFarPoints(t *testing.T) {
	g := buildChain(t, 5)
	g.Recalculate([]core.PointID{0}, core.WithMaxCost(2))

	assert.Equal(t, core.Cost(2), g.GetCostAtPoint(2))
	assert.Equal(t, core.CostInfinity, g.GetCostAtPoint(3))
	assert.Equal(t, core.CostInfinity, g.GetCostAtPoint(4))
}

func TestRecalculate_TerminationPointsStopEarly(t *testing.T) {
	g := buildChain(t, 5)
	g.Recalculate([]core.PointID{0}, core.WithTerminationPoints(2))

	assert.Equal(t, core.Cost(2), g.GetCostAtPoint(2))
	assert.Equal(t, core.CostInfinity, g.GetCostAtPoint(3))
	assert.Equal(t, core.CostInfinity, g.GetCostAtPoint(4))
}

// TestRecalculate_ReadModeSelectsAdjacencyDirection verifies that a directed
// edge is only traversable in the mode matching its direction.
func TestRecalculate_ReadModeSelectsAdjacencyDirection(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddPoint(0, core.TerrainDefault))
	require.NoError(t, g.AddPoint(1, core.TerrainDefault))
	require.NoError(t, g.ConnectPoints(0, 1, core.DefaultWeight, false)) // 0 -> 1 only

	// InputIsDestination (default): origin 1 walks reverse edges, reaching 0.
	g.Recalculate([]core.PointID{1})
	assert.Equal(t, core.Cost(1), g.GetCostAtPoint(0))

	// InputIsOrigin: origin 1 walks forward edges; 1 has none, so 0 stays
	// unreached.
	g.Recalculate([]core.PointID{1}, core.WithRead(core.InputIsOrigin))
	assert.Equal(t, core.CostInfinity, g.GetCostAtPoint(0))

	// InputIsOrigin from 0 reaches 1 via its forward edge.
	g.Recalculate([]core.PointID{0}, core.WithRead(core.InputIsOrigin))
	assert.Equal(t, core.Cost(1), g.GetCostAtPoint(1))
}

func TestRecalculate_MultiSourceVoronoiSplit(t *testing.T) {
	g := buildChain(t, 5) // 0-1-2-3-4
	g.Recalculate([]core.PointID{0, 4})

	assert.Equal(t, core.Cost(0), g.GetCostAtPoint(0))
	assert.Equal(t, core.Cost(0), g.GetCostAtPoint(4))
	assert.Equal(t, core.Cost(1), g.GetCostAtPoint(1))
	assert.Equal(t, core.Cost(1), g.GetCostAtPoint(3))
	assert.Equal(t, core.Cost(2), g.GetCostAtPoint(2))
}

func TestRecalculate_InitialCostsBiasSplit(t *testing.T) {
	g := buildChain(t, 5)
	g.Recalculate([]core.PointID{0, 4}, core.WithInitialCosts([]core.Cost{0, 10}))

	// Origin 4 starts at cost 10, so point 2 (equidistant at cost 2 from
	// either side unbiased) is claimed by origin 0 via cost 2 vs 12.
	assert.Equal(t, core.Cost(2), g.GetCostAtPoint(2))
	dir, ok := g.GetDirectionAtPoint(2)
	require.True(t, ok)
	assert.Equal(t, core.PointID(1), dir)
}

func TestRecalculate_MissingOriginIsSkipped(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddPoint(0, core.TerrainDefault))

	g.Recalculate([]core.PointID{99})
	assert.Equal(t, core.CostInfinity, g.GetCostAtPoint(0))
}

// TestRecalculate_Deterministic confirms repeated runs over the same graph
// and options produce byte-identical cost/direction fields, independent of
// Go map iteration order.
func TestRecalculate_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph()
		for i := core.PointID(0); i < 20; i++ {
			require.NoError(t, g.AddPoint(i, core.TerrainDefault))
		}
		for i := core.PointID(0); i < 19; i++ {
			require.NoError(t, g.ConnectPoints(i, i+1, core.DefaultWeight, true))
			if i+2 < 20 {
				require.NoError(t, g.ConnectPoints(i, i+2, core.Weight(1.5), true))
			}
		}

		return g
	}

	snapshot := func(g *core.Graph) map[core.PointID]core.ComputedInfo {
		out := make(map[core.PointID]core.ComputedInfo)
		for i := core.PointID(0); i < 20; i++ {
			dir, ok := g.GetDirectionAtPoint(i)
			out[i] = core.ComputedInfo{Cost: g.GetCostAtPoint(i), Direction: dir}
			_ = ok
		}

		return out
	}

	g1 := build()
	g1.Recalculate([]core.PointID{0, 10})
	first := snapshot(g1)

	for run := 0; run < 5; run++ {
		g2 := build()
		g2.Recalculate([]core.PointID{0, 10})
		second := snapshot(g2)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("Recalculate is nondeterministic across runs (-want +got):\n%s", diff)
		}
	}
}
