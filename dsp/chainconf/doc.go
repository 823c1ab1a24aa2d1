// Package chainconf builds float64 propagation graphs from declarative
// definitions.
//
// A definition lists nodes by ID with an optional parent ID:
//
//	time_capacity: 16
//	nodes:
//	  - id: in
//	    type: nonuniform
//	    capacity: 16
//	  - id: median
//	    type: midantijitter
//	    parent: in
//	    capacity: 5
//	  - id: out
//	    type: nonuniform
//	    parent: median
//	    capacity: 16
//
// Nodes are built parent first. Children of the same parent are attached in
// declaration order. All non-uniform buffers share one time buffer owned by
// the Pipeline.
package chainconf
