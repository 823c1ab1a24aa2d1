package filter

import "errors"

var (
	// ErrInvalidConfig is returned when a filter configuration fails validation.
	ErrInvalidConfig = errors.New("filter: invalid configuration")
	// ErrHistogramUnderflow is the panic value raised when a histogram bucket
	// would drop below zero. It means the histogram no longer mirrors the window.
	ErrHistogramUnderflow = errors.New("filter: histogram underflow")
)
