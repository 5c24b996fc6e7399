// File: view.go
// Role: A scoped, speculative staging area over a shared graph: operations
// applied through a View are rolled back the moment one fails, or when the
// View is closed — there is no path to a permanent commit through a View.
package journal

import (
	"fmt"

	"github.com/katalvlaran/dijkstramap/core"
)

// View stages Operations against a shared *core.Graph. Queries against
// Graph() observe the staged state; Close unconditionally restores the
// graph to how it stood when the View was created.
type View struct {
	g       *core.Graph
	applied []Operation
	closed  bool
}

// NewView returns a View staging operations against g.
func NewView(g *core.Graph) *View {
	return &View{g: g}
}

// Graph returns the shared graph, reflecting whatever operations have been
// successfully applied so far. Callers must not mutate it directly; all
// mutation should go through Apply so rollback stays consistent.
func (v *View) Graph() *core.Graph {
	return v.g
}

// Apply stages and applies ops in order. If one fails, every operation
// applied earlier in this call (and in any prior successful Apply call on
// this View) is rolled back via its precomputed inverse, in reverse order,
// and the triggering error is returned; the graph ends up exactly as it was
// before this View was created.
func (v *View) Apply(ops ...Operation) error {
	for i, op := range ops {
		inverse, err := op.Undo(v.g)
		if err != nil {
			v.rollback()

			return fmt.Errorf("journal: stage operation %d: %w", i, err)
		}
		if err := op.Apply(v.g); err != nil {
			v.rollback()

			return fmt.Errorf("journal: apply operation %d: %w", i, err)
		}
		v.applied = append(v.applied, inverse)
	}

	return nil
}

// Close rolls back every operation this View has successfully applied, in
// reverse order. Idempotent: a second Close is a no-op. A View has no other
// way to make its staged operations permanent.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.rollback()

	return nil
}

func (v *View) rollback() {
	for i := len(v.applied) - 1; i >= 0; i-- {
		_ = v.applied[i].Apply(v.g)
	}
	v.applied = nil
}
