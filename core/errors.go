// Sentinel errors for the graph store.
package core

import "errors"

var (
	// ErrPointAlreadyExists indicates AddPoint was called with an id already
	// present in the graph.
	ErrPointAlreadyExists = errors.New("core: point already exists")

	// ErrPointNotFound indicates an operation referenced an id that is not
	// in the graph (connect/remove/disable/enable/set-terrain endpoints).
	ErrPointNotFound = errors.New("core: point not found")
)
