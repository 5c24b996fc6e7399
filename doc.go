// Package dijkstramap implements a deterministic, multi-source pathfinding
// engine built around a point graph rather than a coordinate grid.
//
// Points carry only an integer identity and a terrain tag; a single
// Recalculate call relaxes outward (or inward) from a set of origins and
// produces a full cost field and direction field in one pass, queryable in
// O(1) per point until the next Recalculate.
//
// The engine is organized under three subpackages:
//
//	core/    — Graph storage, the relaxation algorithm, and the query surface
//	grid/    — square and pointy-hex builders that allocate point IDs over a
//	           coordinate rectangle and lay down their connections
//	journal/ — a command-pattern wrapper over Graph's mutations, with a View
//	           that stages and unconditionally rolls back a batch of edits
//
// cmd/dijkstramap-demo is a small CLI that exercises the grid builder and
// Recalculate end to end; it is not part of the library's public surface.
package dijkstramap
