package chain

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/interp"
	"github.com/cwbudde/algo-chain/internal/log"
)

// NodeID addresses a node inside its Graph.
type NodeID int

// None is the NodeID of a missing parent, child or sibling.
const None NodeID = -1

// Processor is the per-node transform. Process must not push into the graph
// itself; propagation is done by Graph.Push.
type Processor[T any] interface {
	// Process computes the node output for one input sample.
	Process(input T) T
	// Out returns the last visible value without pushing.
	Out() T
}

// AttachObserver is implemented by processors that validate or adapt to a
// new parent. A non-nil error aborts the attach before any link changes.
type AttachObserver[T any] interface {
	OnAttach(g *Graph[T], parent NodeID) error
}

// Kinded is implemented by processors that provide a default diagnostic name.
type Kinded interface {
	Kind() string
}

type vertex[T any] struct {
	proc    Processor[T]
	name    string
	parent  NodeID
	child   NodeID
	sibling NodeID
	index   int
}

// Graph is an arena of processing nodes linked as a forest.
type Graph[T any] struct {
	trait interp.Trait[T]
	nodes []vertex[T]
	log   logrus.FieldLogger
}

type config struct {
	logger   logrus.FieldLogger
	capacity int
}

// Option configures a Graph.
type Option func(*config)

// WithLogger sets the logger used for construction events.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithCapacityHint preallocates room for n nodes.
func WithCapacityHint(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// New returns an empty graph using the default trait for T.
func New[T any](opts ...Option) *Graph[T] {
	return NewWithTrait(interp.TraitOf[T](), opts...)
}

// NewWithTrait returns an empty graph using an explicit value trait.
func NewWithTrait[T any](trait interp.Trait[T], opts ...Option) *Graph[T] {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLogger()
	}
	if trait == nil {
		trait = interp.TraitOf[T]()
	}
	return &Graph[T]{
		trait: trait,
		nodes: make([]vertex[T], 0, cfg.capacity),
		log:   cfg.logger,
	}
}

// Trait returns the value trait shared by the graph's buffers.
func (g *Graph[T]) Trait() interp.Trait[T] {
	return g.trait
}

// Len returns the number of nodes in the graph.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Add registers p as a new node and attaches it to parent unless parent is None.
func (g *Graph[T]) Add(p Processor[T], parent NodeID, opts ...core.NodeOption) (NodeID, error) {
	if p == nil {
		return None, ErrNilProcessor
	}
	if parent != None && !g.valid(parent) {
		return None, fmt.Errorf("%w: parent %d", ErrUnknownNode, parent)
	}

	cfg := core.ApplyNodeOptions(opts...)
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, vertex[T]{
		proc:    p,
		name:    cfg.Name,
		parent:  None,
		child:   None,
		sibling: None,
	})
	if parent != None {
		if err := g.Attach(id, parent); err != nil {
			g.nodes = g.nodes[:id]
			return None, err
		}
	}

	g.log.WithFields(logrus.Fields{
		"node":   id,
		"name":   g.Name(id),
		"parent": parent,
	}).Debug("node added")
	return id, nil
}

// Attach makes child the newest child of parent. The child's sibling index
// is one more than the previous newest child's, or 0.
func (g *Graph[T]) Attach(child, parent NodeID) error {
	if !g.valid(child) {
		return fmt.Errorf("%w: child %d", ErrUnknownNode, child)
	}
	if !g.valid(parent) {
		return fmt.Errorf("%w: parent %d", ErrUnknownNode, parent)
	}
	if child == parent {
		return fmt.Errorf("%w: node %d", ErrSelfAttach, child)
	}
	if p := g.nodes[child].parent; p != None {
		return fmt.Errorf("%w: node %d is a child of %d", ErrAlreadyAttached, child, p)
	}
	for a := parent; a != None; a = g.nodes[a].parent {
		if a == child {
			return fmt.Errorf("%w: node %d is an ancestor of %d", ErrCycle, child, parent)
		}
	}
	if obs, ok := g.nodes[child].proc.(AttachObserver[T]); ok {
		if err := obs.OnAttach(g, parent); err != nil {
			return fmt.Errorf("attach %d to %d: %w", child, parent, err)
		}
	}

	c, p := &g.nodes[child], &g.nodes[parent]
	c.parent = parent
	c.sibling = p.child
	c.index = 0
	if p.child != None {
		c.index = g.nodes[p.child].index + 1
	}
	p.child = child

	g.log.WithFields(logrus.Fields{
		"node":   child,
		"name":   g.Name(child),
		"parent": parent,
		"index":  c.index,
	}).Debug("node attached")
	return nil
}

// Push processes input at node id and propagates it through the graph:
// the original input goes to the next sibling, the node's output to its
// first child. It returns the node's own output.
func (g *Graph[T]) Push(id NodeID, input T) T {
	out := g.at(id).proc.Process(input)
	if s := g.nodes[id].sibling; s != None {
		g.Push(s, input)
	}
	if c := g.nodes[id].child; c != None {
		g.Push(c, out)
	}
	return out
}

// Out returns the current output of node id.
func (g *Graph[T]) Out(id NodeID) T {
	return g.at(id).proc.Out()
}

// Processor returns the processor registered for node id.
func (g *Graph[T]) Processor(id NodeID) Processor[T] {
	return g.at(id).proc
}

// Parent returns the parent of node id, or None.
func (g *Graph[T]) Parent(id NodeID) NodeID {
	return g.at(id).parent
}

// FirstChild returns the most recently attached child of node id, or None.
func (g *Graph[T]) FirstChild(id NodeID) NodeID {
	return g.at(id).child
}

// NextSibling returns the child of the same parent attached just before id, or None.
func (g *Graph[T]) NextSibling(id NodeID) NodeID {
	return g.at(id).sibling
}

// Index returns the attachment ordinal of node id among its siblings.
func (g *Graph[T]) Index(id NodeID) int {
	return g.at(id).index
}

// Name returns the diagnostic name of node id.
func (g *Graph[T]) Name(id NodeID) string {
	v := g.at(id)
	if v.name != "" {
		return v.name
	}
	if k, ok := v.proc.(Kinded); ok {
		return k.Kind()
	}
	return "Node"
}

// Children returns the children of id in sibling-list order, newest first.
func (g *Graph[T]) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := g.at(id).child; c != None; c = g.nodes[c].sibling {
		out = append(out, c)
	}
	return out
}

// Follow walks from start along step until pred holds and returns the
// matching node. skipped reports whether any node was passed over.
// It returns None when the walk runs out of nodes.
func (g *Graph[T]) Follow(start NodeID, step func(NodeID) NodeID, pred func(NodeID) bool) (id NodeID, skipped bool) {
	for id = start; id != None; id = step(id) {
		if pred(id) {
			return id, skipped
		}
		skipped = true
	}
	return None, skipped
}

func (g *Graph[T]) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

func (g *Graph[T]) at(id NodeID) *vertex[T] {
	if !g.valid(id) {
		panic(fmt.Sprintf("chain: unknown node %d", id))
	}
	return &g.nodes[id]
}
