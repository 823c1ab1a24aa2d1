// Package filter provides propagation-graph nodes that keep only their
// latest output: threshold, clamp and windowed despiking filters.
//
// Filters that look at a window of recent input (HoldHigh, HoldLow,
// MidAntiJitter, HistAntiJitter) own an internal [buffer.Buffer] attached to
// the parent passed at construction; the filter itself is the child of that
// buffer. Pushing into such a filter feeds the internal buffer.
//
//	g := chain.New[float64]()
//	in, _ := buffer.New(g, 16, chain.None)
//	med, _ := filter.NewMidAntiJitter(g, in.ID(), 5)
//	in.Push(x)
//	y := med.Out()
package filter
