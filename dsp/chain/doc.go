// Package chain implements the propagation graph that sample-processing
// nodes are organized in.
//
// A [Graph] is an arena of nodes addressed by [NodeID]. Every node has at
// most one parent, a list of children kept as a singly-linked sibling list
// (most recently attached first), and an index recording its attachment
// order among its siblings.
//
// Pushing a value into a node runs the node's [Processor], then forwards
// the original input to the node's next sibling and the node's output to
// its first child:
//
//	root.Push(v)
//	  out := root.Process(v)
//	  nextSibling.Push(v)   // fan-out: independent transform of the same input
//	  firstChild.Push(out)  // pipeline: continues with the transformed value
//
// One push therefore drives any number of parallel branches and serial
// stages. Sibling subtrees finish before the child subtree starts, and
// propagation is depth-first.
//
// Graphs are single-threaded. Attaching nodes while a push is in flight is
// not supported.
package chain
