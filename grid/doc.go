// Package grid builds core.Graph point sets from rectangular coordinate
// layouts: square grids (4- or 8-connectivity, independent orthogonal and
// diagonal costs) and pointy-top hexagonal grids. Every builder returns the
// coordinate-to-PointID map alongside the populated graph, since callers
// need coordinates to pick origins and read back results.
package grid
