package buffer

import "errors"

var (
	// ErrCapacity is returned for windows shorter than MinCapacity.
	ErrCapacity = errors.New("buffer: capacity must be at least 2")
	// ErrNilGraph is returned when a node is created without a graph.
	ErrNilGraph = errors.New("buffer: nil graph")
	// ErrNoTimeReference is returned when a non-uniform buffer has no time buffer to bind.
	ErrNoTimeReference = errors.New("buffer: missing time reference")
	// ErrTimeCapacity is returned when a time buffer is shorter than the value window.
	ErrTimeCapacity = errors.New("buffer: time reference shorter than window")
)
