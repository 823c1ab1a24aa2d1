package chain

// Handle binds a typed node to its position in a graph. Node types embed it
// to gain Push and the tree accessors.
type Handle[T any] struct {
	graph *Graph[T]
	id    NodeID
}

// NewHandle returns a handle for node id of g.
func NewHandle[T any](g *Graph[T], id NodeID) Handle[T] {
	return Handle[T]{graph: g, id: id}
}

// ID returns the node id.
func (h Handle[T]) ID() NodeID { return h.id }

// Graph returns the graph the node lives in.
func (h Handle[T]) Graph() *Graph[T] { return h.graph }

// Push feeds one sample into the node and propagates it.
func (h Handle[T]) Push(input T) T { return h.graph.Push(h.id, input) }

// Parent returns the parent node, or None.
func (h Handle[T]) Parent() NodeID { return h.graph.Parent(h.id) }

// Index returns the attachment ordinal among siblings.
func (h Handle[T]) Index() int { return h.graph.Index(h.id) }

// Name returns the diagnostic name.
func (h Handle[T]) Name() string { return h.graph.Name(h.id) }

// Attach makes the node a child of parent.
func (h Handle[T]) Attach(parent NodeID) error { return h.graph.Attach(h.id, parent) }
