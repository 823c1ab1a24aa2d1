package chain

import "errors"

var (
	// ErrUnknownNode is returned for a NodeID that does not belong to the graph.
	ErrUnknownNode = errors.New("chain: unknown node")
	// ErrAlreadyAttached is returned when a node that has a parent is attached again.
	ErrAlreadyAttached = errors.New("chain: node already has a parent")
	// ErrSelfAttach is returned when a node is attached to itself.
	ErrSelfAttach = errors.New("chain: node cannot be its own parent")
	// ErrCycle is returned when an attach would make a node its own ancestor.
	ErrCycle = errors.New("chain: attach would create a cycle")
	// ErrNilProcessor is returned when adding a nil processor.
	ErrNilProcessor = errors.New("chain: nil processor")
)
