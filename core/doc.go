// Package core implements a directed, weighted point graph and the
// multi-source relaxation engine that turns a set of origins (or
// destinations) into a full cost field and direction field over the graph.
//
// A Graph stores, per point, its forward edges, reverse edges, and terrain
// tag, plus a disabled-point set. Recalculate runs a deterministic
// Dijkstra-style relaxation from a set of origins and records, for every
// reachable point, the cheapest known cost and the next hop toward (or away
// from, depending on the read direction) the closest origin. The result is
// queryable in O(1) per point until the next Recalculate.
//
// Points are pure identity (PointID); they carry no position. Grid layout
// (assigning PointIDs to (x, y) coordinates) lives in the sibling grid
// package.
//
// Concurrency: Graph is guarded by a single sync.RWMutex. Recalculate takes
// the write lock for its entire run — it is compute-bound and
// uninterruptible, so finer-grained locking would buy nothing.
package core
