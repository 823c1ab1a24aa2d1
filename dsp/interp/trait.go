package interp

import "math"

// Real is satisfied by floating-point types.
type Real interface {
	~float32 | ~float64
}

// Integer is satisfied by signed and unsigned integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is satisfied by every numeric type a filter can operate on.
type Number interface {
	Integer | Real
}

// Trait is the per-type policy used by buffers to initialize slots and to
// interpolate between neighbouring elements.
type Trait[T any] interface {
	// Zero is the value every slot holds after construction.
	Zero() T
	// Linear reports whether Mix produces intermediate values.
	Linear() bool
	// Mix blends a and b with u in [0, 1]; u = 0 yields a, u = 1 yields b.
	Mix(a, b T, u float64) T
}

// FloatTrait interpolates floating-point values linearly.
type FloatTrait[T Real] struct{}

func (FloatTrait[T]) Zero() T      { return 0 }
func (FloatTrait[T]) Linear() bool { return true }

func (FloatTrait[T]) Mix(a, b T, u float64) T {
	return T(float64(a)*(1-u) + float64(b)*u)
}

// IntTrait interpolates integers linearly and rounds half away from zero.
type IntTrait[T Integer] struct{}

func (IntTrait[T]) Zero() T      { return 0 }
func (IntTrait[T]) Linear() bool { return true }

func (IntTrait[T]) Mix(a, b T, u float64) T {
	return T(math.Round(float64(a)*(1-u) + float64(b)*u))
}

// StepTrait is used for opaque types that cannot be blended.
type StepTrait[T any] struct{}

func (StepTrait[T]) Zero() T {
	var zero T
	return zero
}

func (StepTrait[T]) Linear() bool { return false }

func (StepTrait[T]) Mix(a, b T, u float64) T {
	if u < 0.5 {
		return a
	}
	return b
}

// TraitOf returns the trait for the built-in numeric types and StepTrait
// for everything else, including named types derived from numbers. Use an
// explicit FloatTrait or IntTrait for those.
func TraitOf[T any]() Trait[T] {
	var zero T
	var tr any
	switch any(zero).(type) {
	case float64:
		tr = FloatTrait[float64]{}
	case float32:
		tr = FloatTrait[float32]{}
	case int:
		tr = IntTrait[int]{}
	case int8:
		tr = IntTrait[int8]{}
	case int16:
		tr = IntTrait[int16]{}
	case int32:
		tr = IntTrait[int32]{}
	case int64:
		tr = IntTrait[int64]{}
	case uint:
		tr = IntTrait[uint]{}
	case uint8:
		tr = IntTrait[uint8]{}
	case uint16:
		tr = IntTrait[uint16]{}
	case uint32:
		tr = IntTrait[uint32]{}
	case uint64:
		tr = IntTrait[uint64]{}
	default:
		return StepTrait[T]{}
	}
	return tr.(Trait[T])
}
