package filter

import (
	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/interp"
)

// Comparator is a hysteresis threshold. Inputs below the low threshold
// output zero, inputs above the high threshold output one, and inputs inside
// the band leave the output unchanged.
type Comparator[T interp.Number] struct {
	Filter[T]

	low, high T
}

// NewComparator creates a comparator whose output starts at initial. Both
// thresholds start at zero.
func NewComparator[T interp.Number](g *chain.Graph[T], parent chain.NodeID, initial T, opts ...core.NodeOption) (*Comparator[T], error) {
	c := &Comparator[T]{}
	if err := c.register(g, c, parent, opts); err != nil {
		return nil, err
	}
	c.out = initial
	return c, nil
}

// Kind returns the default diagnostic name.
func (c *Comparator[T]) Kind() string { return "Comparator" }

// SetThreshold sets a single threshold with no hysteresis band.
func (c *Comparator[T]) SetThreshold(t T) {
	c.low, c.high = t, t
}

// SetThresholdBand sets the hysteresis band.
func (c *Comparator[T]) SetThresholdBand(low, high T) {
	c.low, c.high = low, high
}

// Threshold returns the band.
func (c *Comparator[T]) Threshold() (low, high T) {
	return c.low, c.high
}

// Process applies the threshold.
func (c *Comparator[T]) Process(input T) T {
	switch {
	case input < c.low:
		c.out = 0
	case input > c.high:
		c.out = 1
	}
	return c.out
}
