// File: options.go
// Role: Functional options for Recalculate.
package core

// ReadMode selects which adjacency map Recalculate traverses.
type ReadMode int

const (
	// InputIsDestination traverses reverse edges: a point's direction points
	// "toward" the closest origin (the default).
	InputIsDestination ReadMode = iota

	// InputIsOrigin traverses forward edges: a point's direction points to
	// its predecessor along the shortest outbound path from an origin.
	InputIsOrigin
)

// recalculateConfig holds the resolved options for one Recalculate call.
type recalculateConfig struct {
	read              ReadMode
	maxCost           Cost
	initialCosts      []Cost
	terrainWeights    map[TerrainType]Weight
	terminationPoints map[PointID]struct{}
}

// RecalculateOption configures a Recalculate call.
type RecalculateOption func(*recalculateConfig)

// WithRead selects destination or origin semantics. Default is
// InputIsDestination.
func WithRead(mode ReadMode) RecalculateOption {
	return func(c *recalculateConfig) { c.read = mode }
}

// WithMaxCost caps the cost a point may be admitted at. Points whose best
// cost would exceed max are not admitted. Default is CostInfinity.
func WithMaxCost(max Cost) RecalculateOption {
	return func(c *recalculateConfig) { c.maxCost = max }
}

// WithInitialCosts seeds per-origin costs, positionally aligned with the
// origins slice passed to Recalculate. An origin with no corresponding entry
// defaults to cost 0. Used to bias the Voronoi split between origins.
func WithInitialCosts(costs []Cost) RecalculateOption {
	return func(c *recalculateConfig) { c.initialCosts = costs }
}

// WithTerrainWeights supplies the terrain-to-weight mapping used by the edge
// cost formula. Unspecified Tagged terrains are treated as WeightInfinity;
// Default is always DefaultWeight regardless of this mapping.
func WithTerrainWeights(weights map[TerrainType]Weight) RecalculateOption {
	return func(c *recalculateConfig) { c.terrainWeights = weights }
}

// WithTerminationPoints sets the points that, once popped from the
// relaxation queue, cause Recalculate to stop after recording their info.
func WithTerminationPoints(points ...PointID) RecalculateOption {
	return func(c *recalculateConfig) {
		for _, p := range points {
			c.terminationPoints[p] = struct{}{}
		}
	}
}

func defaultRecalculateConfig() recalculateConfig {
	return recalculateConfig{
		read:              InputIsDestination,
		maxCost:           CostInfinity,
		initialCosts:      nil,
		terrainWeights:    nil,
		terminationPoints: make(map[PointID]struct{}),
	}
}
