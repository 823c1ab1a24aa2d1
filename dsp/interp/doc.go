// Package interp provides the value traits and sampling modes used by the
// window buffers.
//
// A [Trait] describes how a value type behaves under interpolation: its zero
// value, whether it can be blended at all, and the blend itself. Numeric
// types get [FloatTrait] or [IntTrait]; every other type falls back to
// [StepTrait], which degenerates to a step at u = 0.5.
//
// Sampling modes, from cheapest to most expensive:
//
//   - [Nearest]: pick the closer of the two bracketing elements
//   - [Linear]:  blend the two bracketing elements with [Trait.Mix]
//   - [Spline]:  reserved; currently identical to [Linear]
package interp
