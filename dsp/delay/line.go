// Package delay provides a fixed-capacity circular line addressed by age.
package delay

import (
	"fmt"

	"github.com/cwbudde/algo-chain/dsp/core"
)

// Line is a circular delay line. Read(0) is the most recently written
// element and Read(Len()-1) the oldest.
type Line[T any] struct {
	buffer   []T
	writePos int
}

// New returns a delay line of fixed size with every slot set to fill.
func New[T any](size int, fill T) (*Line[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	d := &Line[T]{buffer: make([]T, size)}
	d.Fill(fill)
	return d, nil
}

// Len returns internal buffer size.
func (d *Line[T]) Len() int {
	return len(d.buffer)
}

// Write stores one element and returns the one it displaced.
func (d *Line[T]) Write(v T) T {
	old := d.buffer[d.writePos]
	d.buffer[d.writePos] = v
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
	return old
}

// Read returns the element written age writes ago. Age 0 is the newest.
// The age must be in [0, Len()).
func (d *Line[T]) Read(age int) T {
	size := len(d.buffer)
	readPos := d.writePos - 1 - age
	if readPos < 0 {
		readPos += size
	}
	return d.buffer[readPos]
}

// Oldest returns the element that the next Write displaces.
func (d *Line[T]) Oldest() T {
	return d.buffer[d.writePos]
}

// CopyTo writes the contents newest-first into dst and returns the number
// of copied elements.
func (d *Line[T]) CopyTo(dst []T) int {
	n := min(len(dst), len(d.buffer))
	for i := 0; i < n; i++ {
		dst[i] = d.Read(i)
	}
	return n
}

// Fill overwrites every slot with v.
func (d *Line[T]) Fill(v T) {
	core.Fill(d.buffer, v)
}

