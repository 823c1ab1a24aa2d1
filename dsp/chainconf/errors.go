package chainconf

import "errors"

var (
	// ErrInvalidDefinition is returned when a definition fails validation.
	ErrInvalidDefinition = errors.New("chainconf: invalid definition")
	// ErrDuplicateID is returned when two nodes share an ID.
	ErrDuplicateID = errors.New("chainconf: duplicate node id")
	// ErrUnknownParent is returned when a node names a parent that is not defined.
	ErrUnknownParent = errors.New("chainconf: unknown parent")
	// ErrCycle is returned when parent links form a cycle.
	ErrCycle = errors.New("chainconf: parent links contain a cycle")
	// ErrUnknownNode is returned by Pipeline lookups for undefined IDs.
	ErrUnknownNode = errors.New("chainconf: unknown node")
	// ErrNoWindow is returned when a node has no window to export or sample.
	ErrNoWindow = errors.New("chainconf: node has no window")
)
