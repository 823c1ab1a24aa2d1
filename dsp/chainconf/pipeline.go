package chainconf

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-chain/dsp/buffer"
	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/filter"
	"github.com/cwbudde/algo-chain/dsp/interp"
	"github.com/cwbudde/algo-chain/dsp/trace"
	"github.com/cwbudde/algo-chain/internal/log"
)

type options struct {
	logger logrus.FieldLogger
}

// Option configures Build.
type Option func(*options)

// WithLogger sets the logger for the pipeline and its graph.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

type entry struct {
	node chain.NodeID
	def  NodeDef
	mode interp.Mode
}

// Pipeline is a graph built from a Definition.
type Pipeline struct {
	graph *chain.Graph[float64]
	time  *buffer.TimeBuffer
	roots []chain.NodeID
	ids   []string
	nodes map[string]entry
}

// port is a built node: in receives pushes, out carries the node's output
// and its children. They differ only for windowed filters.
type port struct {
	in, out chain.NodeID
}

type node interface {
	ID() chain.NodeID
}

type filterNode interface {
	node
	Input() chain.NodeID
}

func portOf(n node) port {
	if f, ok := n.(filterNode); ok {
		return port{in: f.Input(), out: f.ID()}
	}
	return port{in: n.ID(), out: n.ID()}
}

var noPort = port{in: chain.None, out: chain.None}

type factory func(p *Pipeline, n NodeDef, parent chain.NodeID) (port, error)

var factories = map[string]factory{
	TypeBuffer:         newBuffer,
	TypeNonUniform:     newNonUniform,
	TypeComparator:     newComparator,
	TypeHoldHigh:       newHoldHigh,
	TypeHoldLow:        newHoldLow,
	TypeLimiter:        newLimiter,
	TypeMidAntiJitter:  newMidAntiJitter,
	TypeHistAntiJitter: newHistAntiJitter,
}

// Build validates def and constructs its graph.
func Build(def Definition, opts ...Option) (*Pipeline, error) {
	o := options{logger: log.GetLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	order, err := def.order()
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		graph: chain.New[float64](chain.WithLogger(o.logger), chain.WithCapacityHint(2*len(def.Nodes))),
		nodes: make(map[string]entry, len(def.Nodes)),
	}
	tc := timeCapacity(def)
	if tc > 0 {
		if p.time, err = buffer.NewTimeBuffer(tc); err != nil {
			return nil, err
		}
	}

	for _, i := range order {
		n := def.Nodes[i]
		mode, err := interp.ParseMode(n.Mode)
		if err != nil {
			return nil, fmt.Errorf("chainconf: node %q: %w", n.ID, err)
		}
		parent := chain.None
		if n.Parent != "" {
			parent = p.nodes[n.Parent].node
		}
		pt, err := factories[n.Type](p, n, parent)
		if err != nil {
			return nil, fmt.Errorf("chainconf: node %q: %w", n.ID, err)
		}
		if parent == chain.None {
			p.roots = append(p.roots, pt.in)
		}
		p.nodes[n.ID] = entry{node: pt.out, def: n, mode: mode}
	}
	for _, n := range def.Nodes {
		p.ids = append(p.ids, n.ID)
	}

	o.logger.WithFields(logrus.Fields{
		"nodes":         len(def.Nodes),
		"graph_nodes":   p.graph.Len(),
		"roots":         len(p.roots),
		"time_capacity": tc,
	}).Debug("pipeline built")
	return p, nil
}

func timeCapacity(def Definition) int {
	largest := 0
	for _, n := range def.Nodes {
		if n.Type == TypeNonUniform {
			largest = max(largest, n.Capacity)
		}
	}
	if largest == 0 {
		return 0
	}
	if def.TimeCapacity > 0 {
		return def.TimeCapacity
	}
	return largest
}

// Graph returns the underlying graph.
func (p *Pipeline) Graph() *chain.Graph[float64] { return p.graph }

// Time returns the shared time buffer, or nil when the definition has no
// non-uniform buffers.
func (p *Pipeline) Time() *buffer.TimeBuffer { return p.time }

// Roots returns the nodes Push drives, in declaration order. For a windowed
// filter declared without a parent this is its input window.
func (p *Pipeline) Roots() []chain.NodeID { return append([]chain.NodeID(nil), p.roots...) }

// IDs returns the node IDs in declaration order.
func (p *Pipeline) IDs() []string { return append([]string(nil), p.ids...) }

// Node returns the graph node built for id. For filters this is the node
// carrying the output.
func (p *Pipeline) Node(id string) (chain.NodeID, bool) {
	e, ok := p.nodes[id]
	return e.node, ok
}

// Push advances the time buffer to t, then pushes v into every root.
func (p *Pipeline) Push(t buffer.Time, v float64) {
	if p.time != nil {
		p.time.Push(t)
	}
	for _, r := range p.roots {
		p.graph.Push(r, v)
	}
}

// Out returns the current output of node id.
func (p *Pipeline) Out(id string) (float64, error) {
	e, ok := p.nodes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	return p.graph.Out(e.node), nil
}

// Export returns the window of node id, newest first.
func (p *Pipeline) Export(id string) ([]float64, error) {
	e, ok := p.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	w, ok := p.graph.Processor(e.node).(interface{ Export() []float64 })
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoWindow, id)
	}
	return w.Export(), nil
}

// SampleAt samples the non-uniform buffer id at time t using the node's mode.
func (p *Pipeline) SampleAt(id string, t buffer.Time) (float64, error) {
	e, ok := p.nodes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	nu, ok := p.graph.Processor(e.node).(*buffer.NonUniform[float64])
	if !ok {
		return 0, fmt.Errorf("%w: %q is not time-stamped", ErrNoWindow, id)
	}
	return nu.SampleAtTime(t, e.mode), nil
}

// Dump renders every drawable root.
func (p *Pipeline) Dump() string {
	var parts []string
	for _, r := range p.roots {
		if s := trace.Dump(p.graph, r); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func named(n NodeDef) core.NodeOption {
	return core.WithName(n.ID)
}

func newBuffer(p *Pipeline, n NodeDef, parent chain.NodeID) (port, error) {
	b, err := buffer.New(p.graph, n.Capacity, parent, named(n))
	if err != nil {
		return noPort, err
	}
	return portOf(b), nil
}

func newNonUniform(p *Pipeline, n NodeDef, parent chain.NodeID) (port, error) {
	b, err := buffer.NewNonUniform(p.graph, n.Capacity, p.time, parent, named(n))
	if err != nil {
		return noPort, err
	}
	return portOf(b), nil
}

func newComparator(p *Pipeline, n NodeDef, parent chain.NodeID) (port, error) {
	c, err := filter.NewComparator(p.graph, parent, n.Num("initial", 0), named(n))
	if err != nil {
		return noPort, err
	}
	if _, ok := n.Params["threshold"]; ok {
		c.SetThreshold(n.Num("threshold", 0))
	} else {
		c.SetThresholdBand(n.Num("low", 0), n.Num("high", 0))
	}
	return portOf(c), nil
}

func newLimiter(p *Pipeline, n NodeDef, parent chain.NodeID) (port, error) {
	l, err := filter.NewLimiter(p.graph, parent, named(n))
	if err != nil {
		return noPort, err
	}
	l.SetLimit(n.Num("low", 0), n.Num("high", 1))
	return portOf(l), nil
}

func newHoldHigh(p *Pipeline, n NodeDef, parent chain.NodeID) (port, error) {
	h, err := filter.NewHoldHigh(p.graph, parent, n.Capacity, named(n))
	if err != nil {
		return noPort, err
	}
	return portOf(h), nil
}

func newHoldLow(p *Pipeline, n NodeDef, parent chain.NodeID) (port, error) {
	h, err := filter.NewHoldLow(p.graph, parent, n.Capacity, named(n))
	if err != nil {
		return noPort, err
	}
	return portOf(h), nil
}

func newMidAntiJitter(p *Pipeline, n NodeDef, parent chain.NodeID) (port, error) {
	m, err := filter.NewMidAntiJitter(p.graph, parent, n.Capacity, named(n))
	if err != nil {
		return noPort, err
	}
	return portOf(m), nil
}

func newHistAntiJitter(p *Pipeline, n NodeDef, parent chain.NodeID) (port, error) {
	cfg := filter.HistConfig{
		Size:    n.Capacity,
		Buckets: int(n.Num("buckets", 0)),
		Min:     n.Num("min", 0),
		Max:     n.Num("max", 0),
		Margin:  n.Num("margin", filter.DefaultMargin),
	}
	h, err := filter.NewHistAntiJitter(p.graph, parent, cfg, named(n))
	if err != nil {
		return noPort, err
	}
	return portOf(h), nil
}
