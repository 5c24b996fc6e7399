// File: relax.go
// Role: The multi-source relaxation engine — clears and rebuilds the
// computed cost/direction field from a set of origins, per a deterministic
// Dijkstra-style algorithm.
package core

// Recalculate clears the computed cost/direction field and rebuilds it from
// origins via a deterministic multi-source relaxation. Missing origins (ids
// not present in the graph) are silently skipped. The relaxation engine
// never fails: malformed or empty input produces an empty computed field.
func (g *Graph) Recalculate(origins []PointID, opts ...RecalculateOption) {
	cfg := defaultRecalculateConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.computed = make(map[PointID]ComputedInfo, len(g.points))
	g.sorted = g.sorted[:0]

	capacity := sqrtTimesSix(len(g.points))
	if capacity < len(origins) {
		capacity = len(origins)
	}
	queue := newPointQueue(capacity)
	settled := make(map[PointID]struct{}, len(g.points))

	for i, origin := range origins {
		if _, exists := g.points[origin]; !exists {
			continue
		}
		cost := Cost(0)
		if i < len(cfg.initialCosts) {
			cost = cfg.initialCosts[i]
		}
		if info, already := g.computed[origin]; !already || cost < info.Cost {
			g.computed[origin] = ComputedInfo{Direction: origin, Cost: cost}
		}
		queue.push(origin, cost)
	}

	// Safety bound: at most one settle per point, so budget never starves a
	// legitimate relaxation while still capping a malformed graph's runtime.
	for budget := len(g.points); budget > 0; {
		item, ok := queue.popMin()
		if !ok {
			break
		}
		u := item.id
		if _, already := settled[u]; already {
			// Stale queue entry from an earlier, costlier push for u.
			continue
		}
		settled[u] = struct{}{}
		budget--

		g.sorted = append(g.sorted, u)
		if _, stop := cfg.terminationPoints[u]; stop {
			break
		}

		weightU := terrainWeight(g.points[u].terrain, cfg.terrainWeights)
		for v, edgeWeight := range neighborsOf(g.points[u], cfg.read) {
			if _, disabled := g.disabled[v]; disabled {
				continue
			}

			weightV := terrainWeight(g.points[v].terrain, cfg.terrainWeights)
			tentative := g.computed[u].Cost + Cost(edgeWeight)*Cost(0.5)*Cost(weightU+weightV)
			if tentative > cfg.maxCost {
				continue
			}

			// An unreached neighbor counts as CostInfinity, so an infinite
			// tentative cost (an impassable terrain) never admits it.
			best := CostInfinity
			if current, reached := g.computed[v]; reached {
				best = current.Cost
			}
			if tentative >= best {
				continue
			}

			g.computed[v] = ComputedInfo{Direction: u, Cost: tentative}
			queue.push(v, tentative)
		}
	}
}

// neighborsOf returns the adjacency map selected by mode: reverse edges for
// InputIsDestination, forward edges for InputIsOrigin.
func neighborsOf(rec *pointRecord, mode ReadMode) map[PointID]Weight {
	if mode == InputIsOrigin {
		return rec.forward
	}

	return rec.reverse
}

// terrainWeight resolves a terrain's weight: Default is always
// DefaultWeight regardless of the supplied mapping; a Tagged terrain absent
// from the mapping is treated as impassable (WeightInfinity).
func terrainWeight(t TerrainType, weights map[TerrainType]Weight) Weight {
	if t.IsDefault() {
		return DefaultWeight
	}
	if w, ok := weights[t]; ok {
		return w
	}

	return WeightInfinity
}

// sqrtTimesSix implements the capacity heuristic: roughly 6*sqrt(n).
func sqrtTimesSix(n int) int {
	return isqrt(n) * 6
}

// isqrt returns floor(sqrt(n)) for n >= 0, via Newton's method, since this
// is only ever used as a capacity hint and needn't pull in math.Sqrt.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}
