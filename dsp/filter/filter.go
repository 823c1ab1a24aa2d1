package filter

import (
	"github.com/cwbudde/algo-chain/dsp/buffer"
	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
)

// Filter is the state shared by every filter node: its graph handle and the
// latest output, which starts at the graph trait's zero value.
type Filter[T any] struct {
	chain.Handle[T]

	out T
}

// Out returns the latest output.
func (f *Filter[T]) Out() T {
	return f.out
}

// TimeRef returns the time buffer of the nearest time-referenced ancestor,
// or nil when the filter is not below a non-uniform buffer.
func (f *Filter[T]) TimeRef() *buffer.TimeBuffer {
	return buffer.TimeRefOf(f.Graph(), f.Parent())
}

// Time returns the newest time stamp of TimeRef, or zero without one.
func (f *Filter[T]) Time() buffer.Time {
	if ref := f.TimeRef(); ref != nil {
		return ref.Out()
	}
	return 0
}

// Input returns the node a driver pushes into to feed the filter.
func (f *Filter[T]) Input() chain.NodeID {
	return f.ID()
}

func (f *Filter[T]) register(g *chain.Graph[T], p chain.Processor[T], parent chain.NodeID, opts []core.NodeOption) error {
	if g == nil {
		return buffer.ErrNilGraph
	}
	f.out = g.Trait().Zero()
	id, err := g.Add(p, parent, opts...)
	if err != nil {
		return err
	}
	f.Handle = chain.NewHandle(g, id)
	return nil
}

// windowed is a filter fed through a private input window.
type windowed[T any] struct {
	Filter[T]

	window  *buffer.Buffer[T]
	scratch []T
}

// register creates the input window under parent and attaches p to it.
func (w *windowed[T]) register(g *chain.Graph[T], p chain.Processor[T], kind string, size int, parent chain.NodeID, opts []core.NodeOption) error {
	name := core.ApplyNodeOptions(opts...).Name
	if name == "" {
		name = kind
	}
	win, err := buffer.New(g, size, parent, core.WithName(name+".in"))
	if err != nil {
		return err
	}
	w.window = win
	w.scratch = make([]T, size)
	return w.Filter.register(g, p, win.ID(), opts)
}

// Window returns the internal input window.
func (w *windowed[T]) Window() *buffer.Buffer[T] {
	return w.window
}

// Input returns the internal window. Pushing the filter node itself through
// the graph bypasses the window, so roots must be driven through Input.
func (w *windowed[T]) Input() chain.NodeID {
	return w.window.ID()
}

// Push feeds input into the internal window, which propagates to the filter,
// and returns the filter's new output.
func (w *windowed[T]) Push(input T) T {
	w.window.Push(input)
	return w.out
}

func (w *windowed[T]) snapshot() []T {
	w.scratch = w.window.ExportInto(w.scratch)
	return w.scratch
}
