package filter

import (
	"cmp"
	"slices"

	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
)

// MidAntiJitter outputs the middle-rank element of its input window. For
// even window sizes this is the upper of the two middle elements.
type MidAntiJitter[T cmp.Ordered] struct {
	windowed[T]
}

// NewMidAntiJitter creates a running-median filter over size elements.
func NewMidAntiJitter[T cmp.Ordered](g *chain.Graph[T], parent chain.NodeID, size int, opts ...core.NodeOption) (*MidAntiJitter[T], error) {
	m := &MidAntiJitter[T]{}
	if err := m.register(g, m, m.Kind(), size, parent, opts); err != nil {
		return nil, err
	}
	return m, nil
}

// Kind returns the default diagnostic name.
func (m *MidAntiJitter[T]) Kind() string { return "MidAntiJitter" }

// Process sorts a snapshot of the window and returns its middle element.
func (m *MidAntiJitter[T]) Process(T) T {
	s := m.snapshot()
	slices.Sort(s)
	m.out = s[len(s)/2]
	return m.out
}
