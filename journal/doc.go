// Package journal provides a command-pattern wrapper around core.Graph's
// mutating methods, plus a View that stages a sequence of operations,
// rolling back everything applied so far the moment one fails or the view
// is closed.
//
// Go has no destructors, so Close is an explicit substitute for scope-exit
// rollback; callers are expected to defer it. Each operation's inverse is
// computed immediately before the operation is applied, from the graph's
// pre-apply state, and stored for replay at rollback time — computing an
// inverse lazily during rollback itself would read state already mutated by
// later operations in the sequence, silently losing the pre-apply value for
// operations like SetTerrainForPoint.
package journal
