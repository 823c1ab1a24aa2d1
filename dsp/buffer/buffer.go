package buffer

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/delay"
	"github.com/cwbudde/algo-chain/dsp/interp"
)

// MinCapacity is the smallest window a buffer accepts.
const MinCapacity = 2

// Buffer is a fixed-capacity, most-recent-first window node. Pushing a value
// evicts the oldest element, stores the value at position 0 and forwards it
// unchanged to the node's children.
type Buffer[T any] struct {
	chain.Handle[T]

	line    *delay.Line[T]
	trait   interp.Trait[T]
	evicted T
}

// New creates a buffer with the given capacity in g and attaches it to
// parent unless parent is chain.None. Every slot starts at the graph trait's
// zero value.
func New[T any](g *chain.Graph[T], capacity int, parent chain.NodeID, opts ...core.NodeOption) (*Buffer[T], error) {
	b, err := newBuffer(g, capacity)
	if err != nil {
		return nil, err
	}
	if err := b.register(g, b, parent, opts); err != nil {
		return nil, err
	}
	return b, nil
}

func newBuffer[T any](g *chain.Graph[T], capacity int) (*Buffer[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if capacity < MinCapacity {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}
	tr := g.Trait()
	line, err := delay.New(capacity, tr.Zero())
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{line: line, trait: tr, evicted: tr.Zero()}, nil
}

// register adds p, the outermost node value wrapping b, to the graph.
func (b *Buffer[T]) register(g *chain.Graph[T], p chain.Processor[T], parent chain.NodeID, opts []core.NodeOption) error {
	id, err := g.Add(p, parent, opts...)
	if err != nil {
		return err
	}
	b.Handle = chain.NewHandle(g, id)
	return nil
}

// Process stores input at the front of the window and returns it.
func (b *Buffer[T]) Process(input T) T {
	b.evicted = b.line.Write(input)
	return input
}

// Out returns the most recent element.
func (b *Buffer[T]) Out() T {
	return b.line.Read(0)
}

// Kind returns the default diagnostic name.
func (b *Buffer[T]) Kind() string {
	return "Buffer"
}

// Len returns the window capacity.
func (b *Buffer[T]) Len() int {
	return b.line.Len()
}

// At returns the element at position i, 0 being the newest.
// It panics if i is outside [0, Len()).
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.line.Len() {
		panic(fmt.Sprintf("buffer: index %d out of range [0,%d)", i, b.line.Len()))
	}
	return b.line.Read(i)
}

// Back returns the oldest element, the one the next push evicts.
func (b *Buffer[T]) Back() T {
	return b.line.Oldest()
}

// Evicted returns the element that left the window on the most recent push.
// Before the first push it is the trait zero.
func (b *Buffer[T]) Evicted() T {
	return b.evicted
}

// Sample returns the value at fractional position x. Positions are clamped
// to [0, Len()-1]. Types whose trait is not linear always use Nearest.
func (b *Buffer[T]) Sample(x float64, mode interp.Mode) T {
	last := b.line.Len() - 1
	if math.IsNaN(x) {
		x = 0
	}
	x = core.Clamp(x, 0, float64(last))
	if !b.trait.Linear() {
		mode = interp.Nearest
	}

	i0 := int(x)
	i1 := min(i0+1, last)
	frac := x - float64(i0)

	if mode.Interpolating() {
		return b.trait.Mix(b.line.Read(i0), b.line.Read(i1), frac)
	}
	if frac < 0.5 {
		return b.line.Read(i0)
	}
	return b.line.Read(i1)
}

// Export returns a copy of the window, newest first.
func (b *Buffer[T]) Export() []T {
	out := make([]T, b.line.Len())
	b.line.CopyTo(out)
	return out
}

// ExportInto copies the window into dst, growing it when needed, and
// returns the filled slice.
func (b *Buffer[T]) ExportInto(dst []T) []T {
	dst = core.EnsureLen(dst, b.line.Len())
	b.line.CopyTo(dst)
	return dst
}

// Fill overwrites every slot with v without propagating.
func (b *Buffer[T]) Fill(v T) {
	b.line.Fill(v)
}

// Cell formats the element at position i for diagnostics.
func (b *Buffer[T]) Cell(i int) string {
	return fmt.Sprint(b.At(i))
}

// String renders the buffer as name[capacity](v0, v1, ...).
func (b *Buffer[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s[%d](", b.Name(), b.Len())
	for i := 0; i < b.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, b.line.Read(i))
	}
	sb.WriteByte(')')
	return sb.String()
}
