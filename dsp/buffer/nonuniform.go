package buffer

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/interp"
)

// Time is the scalar time stamp stored in time buffers.
type Time = float64

// TimeBuffer is a window of time stamps shared by non-uniform buffers.
type TimeBuffer = Buffer[Time]

// NewTimeBuffer creates a root time buffer in a graph of its own.
func NewTimeBuffer(capacity int, opts ...core.NodeOption) (*TimeBuffer, error) {
	opts = append([]core.NodeOption{core.WithName("Time")}, opts...)
	return New(chain.New[Time](), capacity, chain.None, opts...)
}

// Pair is one time-stamped window element.
type Pair[T any] struct {
	Time  Time
	Value T
}

// TimeReferencer is implemented by nodes correlated with a time buffer.
type TimeReferencer interface {
	TimeRef() *TimeBuffer
}

// NonUniform is a buffer whose positions are time-stamped by a shared time
// buffer: position i of the window belongs to position i of the time buffer.
type NonUniform[T any] struct {
	*Buffer[T]

	timeRef *TimeBuffer
}

// NewNonUniform creates a non-uniform buffer bound to timeRef. timeRef may be
// nil when parent or one of its ancestors is a non-uniform buffer; the
// nearest one's reference is used then. Attaching to a non-uniform parent always rebinds to the
// parent's reference.
func NewNonUniform[T any](g *chain.Graph[T], capacity int, timeRef *TimeBuffer, parent chain.NodeID, opts ...core.NodeOption) (*NonUniform[T], error) {
	b, err := newBuffer(g, capacity)
	if err != nil {
		return nil, err
	}
	nu := &NonUniform[T]{Buffer: b}

	if timeRef == nil {
		timeRef = TimeRefOf(g, parent)
	}
	if err := nu.BindTimeReference(timeRef); err != nil {
		return nil, err
	}
	if err := b.register(g, nu, parent, opts); err != nil {
		return nil, err
	}
	return nu, nil
}

// TimeRefOf returns the time reference of the nearest node, starting at id
// and walking parent links, that has one. It returns nil when there is none.
func TimeRefOf[T any](g *chain.Graph[T], id chain.NodeID) *TimeBuffer {
	if id < 0 || int(id) >= g.Len() {
		return nil
	}
	found, _ := g.Follow(id, g.Parent, func(id chain.NodeID) bool {
		tr, ok := g.Processor(id).(TimeReferencer)
		return ok && tr.TimeRef() != nil
	})
	if found == chain.None {
		return nil
	}
	return g.Processor(found).(TimeReferencer).TimeRef()
}

// Kind returns the default diagnostic name.
func (nu *NonUniform[T]) Kind() string {
	return "NonUniform"
}

// TimeRef returns the bound time buffer.
func (nu *NonUniform[T]) TimeRef() *TimeBuffer {
	return nu.timeRef
}

// BindTimeReference binds the buffer to ref. The time buffer must hold at
// least as many positions as the value window.
func (nu *NonUniform[T]) BindTimeReference(ref *TimeBuffer) error {
	if ref == nil {
		return ErrNoTimeReference
	}
	if ref.Len() < nu.Len() {
		return fmt.Errorf("%w: %d < %d", ErrTimeCapacity, ref.Len(), nu.Len())
	}
	nu.timeRef = ref
	return nil
}

// OnAttach rebinds to the time reference of a non-uniform parent.
func (nu *NonUniform[T]) OnAttach(g *chain.Graph[T], parent chain.NodeID) error {
	tr, ok := g.Processor(parent).(TimeReferencer)
	if !ok || tr.TimeRef() == nil {
		return nil
	}
	return nu.BindTimeReference(tr.TimeRef())
}

// Time returns the time stamp of the newest element.
func (nu *NonUniform[T]) Time() Time {
	return nu.timeRef.Out()
}

// TimeAt returns the time stamp at position pos of the time buffer.
func (nu *NonUniform[T]) TimeAt(pos int) Time {
	return nu.timeRef.At(pos)
}

// Span returns the newest minus the oldest time stamp of the time buffer.
func (nu *NonUniform[T]) Span() Time {
	return nu.timeRef.Out() - nu.timeRef.Back()
}

// Seek returns the fractional position that corresponds to time t by binary
// search over the time buffer. Nearest returns the closer bracketing
// position (the newer one on ties); Linear and Spline interpolate between
// the two. Times outside the buffer clamp to its ends.
func (nu *NonUniform[T]) Seek(t Time, mode interp.Mode) float64 {
	ref := nu.timeRef
	l, r := 0, ref.Len()-1
	for l+1 < r {
		m := (l + r) >> 1
		if ref.At(m) < t {
			r = m
		} else {
			l = m
		}
	}

	t0, t1 := ref.At(l), ref.At(r)
	if !mode.Interpolating() {
		if math.Abs(t1-t) < math.Abs(t-t0) {
			return float64(r)
		}
		return float64(l)
	}

	frac := 0.0
	if !core.NearlyEqual(t0, t1, 0) {
		frac = (t - t0) / (t1 - t0)
	}
	if math.IsNaN(frac) {
		frac = 0
	}
	return float64(l) + core.Clamp(frac, 0, 1)
}

// SampleAtTime samples the window at time t.
func (nu *NonUniform[T]) SampleAtTime(t Time, mode interp.Mode) T {
	return nu.Sample(nu.Seek(t, mode), mode)
}

// ExportPairs returns the window zipped with its time stamps, newest first.
func (nu *NonUniform[T]) ExportPairs() []Pair[T] {
	out := make([]Pair[T], nu.Len())
	for i := range out {
		out[i] = Pair[T]{Time: nu.timeRef.At(i), Value: nu.At(i)}
	}
	return out
}

// TimeLen returns the length of the time buffer.
func (nu *NonUniform[T]) TimeLen() int {
	return nu.timeRef.Len()
}

// TimeCell formats the time stamp at position i for diagnostics.
func (nu *NonUniform[T]) TimeCell(i int) string {
	return fmt.Sprint(nu.timeRef.At(i))
}

// String renders the buffer as name[capacity]((t0,v0), (t1,v1), ...).
func (nu *NonUniform[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s[%d](", nu.Name(), nu.Len())
	for i := 0; i < nu.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%v,%v)", nu.timeRef.At(i), nu.At(i))
	}
	sb.WriteByte(')')
	return sb.String()
}
