// File: operation.go
// Role: The eight journaled operation types, each pairing Apply (perform the
// mutation against a graph) with Undo (compute, from the graph's current —
// pre-apply — state, the operation that would reverse it).
package journal

import (
	"errors"

	"github.com/katalvlaran/dijkstramap/core"
)

// ErrNotInvertible is returned by RemovePoint.Undo: removing a point
// destroys its edges, and there is no way to reconstruct them as a single
// inverse operation. Callers that need rollback must not stage a
// RemovePoint.
var ErrNotInvertible = errors.New("journal: RemovePoint is not invertible")

// Operation is a single journaled graph mutation.
type Operation interface {
	// Apply performs the mutation against g.
	Apply(g *core.Graph) error

	// Undo computes, from g's current state, the Operation that would
	// reverse this one. Must be called before Apply to capture pre-apply
	// state; calling it afterward generally computes the wrong inverse.
	Undo(g *core.Graph) (Operation, error)
}

// AddPoint inserts a new point, failing if id already exists.
type AddPoint struct {
	ID      core.PointID
	Terrain core.TerrainType
}

func (op AddPoint) Apply(g *core.Graph) error { return g.AddPoint(op.ID, op.Terrain) }

func (op AddPoint) Undo(g *core.Graph) (Operation, error) {
	return &RemovePoint{ID: op.ID}, nil
}

// AddPointReplace inserts or replaces a point, always succeeding.
type AddPointReplace struct {
	ID      core.PointID
	Terrain core.TerrainType
}

func (op AddPointReplace) Apply(g *core.Graph) error {
	g.AddPointReplace(op.ID, op.Terrain)

	return nil
}

func (op AddPointReplace) Undo(g *core.Graph) (Operation, error) {
	if terrain, existed := g.GetTerrainForPoint(op.ID); existed {
		return AddPointReplace{ID: op.ID, Terrain: terrain}, nil
	}

	return &RemovePoint{ID: op.ID}, nil
}

// RemovePoint deletes a point and its edges. It is not invertible: use a
// pointer so Removed can be read back after Apply, but never stage it in a
// View that expects rollback.
type RemovePoint struct {
	ID core.PointID

	removed core.PointRecord
	found   bool
}

func (op *RemovePoint) Apply(g *core.Graph) error {
	op.removed, op.found = g.RemovePoint(op.ID)

	return nil
}

// Removed returns the snapshot captured by the most recent Apply, and
// whether the point existed at removal time.
func (op *RemovePoint) Removed() (core.PointRecord, bool) { return op.removed, op.found }

func (op *RemovePoint) Undo(g *core.Graph) (Operation, error) {
	return nil, ErrNotInvertible
}

// ConnectPoints inserts an edge, optionally its symmetric counterpart.
type ConnectPoints struct {
	Source, Target core.PointID
	Weight         core.Weight
	Bidirectional  bool
}

func (op ConnectPoints) Apply(g *core.Graph) error {
	return g.ConnectPoints(op.Source, op.Target, op.Weight, op.Bidirectional)
}

func (op ConnectPoints) Undo(g *core.Graph) (Operation, error) {
	return RemoveConnection{Source: op.Source, Target: op.Target, Bidirectional: op.Bidirectional}, nil
}

// RemoveConnection deletes an edge, optionally its symmetric counterpart.
type RemoveConnection struct {
	Source, Target core.PointID
	Bidirectional  bool
}

func (op RemoveConnection) Apply(g *core.Graph) error {
	return g.RemoveConnection(op.Source, op.Target, op.Bidirectional)
}

func (op RemoveConnection) Undo(g *core.Graph) (Operation, error) {
	weight, ok := g.GetConnectionWeight(op.Source, op.Target)
	if !ok {
		return nil, core.ErrPointNotFound
	}

	return ConnectPoints{Source: op.Source, Target: op.Target, Weight: weight, Bidirectional: op.Bidirectional}, nil
}

// DisablePoint marks a point as disabled for pathfinding.
type DisablePoint struct {
	ID core.PointID
}

func (op DisablePoint) Apply(g *core.Graph) error { return g.DisablePoint(op.ID) }

func (op DisablePoint) Undo(g *core.Graph) (Operation, error) {
	return EnablePoint{ID: op.ID}, nil
}

// EnablePoint clears a point's disabled flag.
type EnablePoint struct {
	ID core.PointID
}

func (op EnablePoint) Apply(g *core.Graph) error { return g.EnablePoint(op.ID) }

func (op EnablePoint) Undo(g *core.Graph) (Operation, error) {
	return DisablePoint{ID: op.ID}, nil
}

// SetTerrainForPoint updates a point's terrain tag.
type SetTerrainForPoint struct {
	ID      core.PointID
	Terrain core.TerrainType
}

func (op SetTerrainForPoint) Apply(g *core.Graph) error {
	return g.SetTerrainForPoint(op.ID, op.Terrain)
}

func (op SetTerrainForPoint) Undo(g *core.Graph) (Operation, error) {
	previous, ok := g.GetTerrainForPoint(op.ID)
	if !ok {
		return nil, core.ErrPointNotFound
	}

	return SetTerrainForPoint{ID: op.ID, Terrain: previous}, nil
}
