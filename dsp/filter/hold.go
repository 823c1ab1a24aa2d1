package filter

import (
	"cmp"
	"slices"

	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
)

// HoldHigh outputs the largest element of its input window.
type HoldHigh[T cmp.Ordered] struct {
	windowed[T]
}

// NewHoldHigh creates a HoldHigh filter with a window of size elements fed
// by parent.
func NewHoldHigh[T cmp.Ordered](g *chain.Graph[T], parent chain.NodeID, size int, opts ...core.NodeOption) (*HoldHigh[T], error) {
	h := &HoldHigh[T]{}
	if err := h.register(g, h, h.Kind(), size, parent, opts); err != nil {
		return nil, err
	}
	return h, nil
}

// Kind returns the default diagnostic name.
func (h *HoldHigh[T]) Kind() string { return "HoldHigh" }

// Process returns the window maximum. The input is already in the window.
func (h *HoldHigh[T]) Process(T) T {
	h.out = slices.Max(h.snapshot())
	return h.out
}

// HoldLow outputs the smallest element of its input window.
type HoldLow[T cmp.Ordered] struct {
	windowed[T]
}

// NewHoldLow creates a HoldLow filter with a window of size elements fed by
// parent.
func NewHoldLow[T cmp.Ordered](g *chain.Graph[T], parent chain.NodeID, size int, opts ...core.NodeOption) (*HoldLow[T], error) {
	h := &HoldLow[T]{}
	if err := h.register(g, h, h.Kind(), size, parent, opts); err != nil {
		return nil, err
	}
	return h, nil
}

// Kind returns the default diagnostic name.
func (h *HoldLow[T]) Kind() string { return "HoldLow" }

// Process returns the window minimum.
func (h *HoldLow[T]) Process(T) T {
	h.out = slices.Min(h.snapshot())
	return h.out
}
