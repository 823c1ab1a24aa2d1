package filter

import (
	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/interp"
)

// Limiter clamps its input to [low, high], by default [0, 1].
type Limiter[T interp.Number] struct {
	Filter[T]

	low, high T
}

// NewLimiter creates a Limiter fed by parent.
func NewLimiter[T interp.Number](g *chain.Graph[T], parent chain.NodeID, opts ...core.NodeOption) (*Limiter[T], error) {
	l := &Limiter[T]{low: 0, high: 1}
	if err := l.register(g, l, parent, opts); err != nil {
		return nil, err
	}
	return l, nil
}

// Kind returns the default diagnostic name.
func (l *Limiter[T]) Kind() string { return "Limiter" }

// SetLimit sets the clamp bounds. Swapped bounds are reordered.
func (l *Limiter[T]) SetLimit(low, high T) {
	l.low, l.high = min(low, high), max(low, high)
}

// Limit returns the clamp bounds.
func (l *Limiter[T]) Limit() (low, high T) {
	return l.low, l.high
}

// Process clamps input to the bounds.
func (l *Limiter[T]) Process(input T) T {
	l.out = core.Clamp(input, l.low, l.high)
	return l.out
}
