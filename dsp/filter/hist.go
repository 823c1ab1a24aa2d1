package filter

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/interp"
)

// DefaultMargin is the trim margin used by DefaultHistConfig.
const DefaultMargin = 0.05

var validate = validator.New()

// HistConfig parameterizes a HistAntiJitter filter.
type HistConfig struct {
	// Size is the window length in samples.
	Size int `yaml:"size" validate:"gte=2"`
	// Buckets is the number of histogram buckets spanning [Min, Max].
	Buckets int     `yaml:"buckets" validate:"gte=2"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max" validate:"gtfield=Min"`
	// Margin is the fraction of the window that may be trimmed at each end
	// of the distribution.
	Margin float64 `yaml:"margin" validate:"gte=0,lt=1"`
}

// DefaultHistConfig returns a configuration with the default trim margin.
func DefaultHistConfig(size, buckets int, lo, hi float64) HistConfig {
	return HistConfig{Size: size, Buckets: buckets, Min: lo, Max: hi, Margin: DefaultMargin}
}

// Validate reports whether the configuration can build a filter.
func (c HistConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// MarginCount returns the trim margin in samples.
func (c HistConfig) MarginCount() int {
	return int(float64(c.Size) * c.Margin)
}

// HistAntiJitter is an adaptive despiking filter. It keeps a histogram of
// its input window and clamps inputs that fall in either tail of the
// distribution, where a tail holds at most MarginCount samples, to the
// nearest accepted bucket.
type HistAntiJitter[T interp.Real] struct {
	windowed[T]

	cfg       HistConfig
	margin    int
	hist      []int
	low, high int
}

// NewHistAntiJitter creates a histogram despiker fed by parent.
func NewHistAntiJitter[T interp.Real](g *chain.Graph[T], parent chain.NodeID, cfg HistConfig, opts ...core.NodeOption) (*HistAntiJitter[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &HistAntiJitter[T]{
		cfg:    cfg,
		margin: cfg.MarginCount(),
		hist:   make([]int, cfg.Buckets),
	}
	if err := h.register(g, h, h.Kind(), cfg.Size, parent, opts); err != nil {
		return nil, err
	}
	h.hist[h.Bucket(g.Trait().Zero())] = cfg.Size
	h.low, h.high = h.bounds()
	return h, nil
}

// Kind returns the default diagnostic name.
func (h *HistAntiJitter[T]) Kind() string { return "HistAntiJitter" }

// Config returns the filter configuration.
func (h *HistAntiJitter[T]) Config() HistConfig { return h.cfg }

// Histogram returns a copy of the bucket counts.
func (h *HistAntiJitter[T]) Histogram() []int {
	return append([]int(nil), h.hist...)
}

// Bounds returns the lowest and highest accepted buckets after the most
// recent push.
func (h *HistAntiJitter[T]) Bounds() (low, high int) {
	return h.low, h.high
}

// Bucket maps v to its histogram bucket. Values outside [Min, Max] map to
// the first or last bucket; NaN maps to the first.
func (h *HistAntiJitter[T]) Bucket(v T) int {
	if math.IsNaN(float64(v)) {
		return 0
	}
	x := core.Clamp((float64(v)-h.cfg.Min)/(h.cfg.Max-h.cfg.Min), 0, 1)
	return int(x * float64(h.cfg.Buckets-1))
}

// Value maps a bucket index back to the domain.
func (h *HistAntiJitter[T]) Value(bucket int) T {
	span := h.cfg.Max - h.cfg.Min
	return T(span*float64(bucket)/float64(h.cfg.Buckets-1) + h.cfg.Min)
}

// Reset fills the window with v and rebuilds the histogram to match.
func (h *HistAntiJitter[T]) Reset(v T) {
	h.window.Fill(v)
	clear(h.hist)
	h.hist[h.Bucket(v)] = h.cfg.Size
	h.low, h.high = h.bounds()
}

// Process moves the evicted sample's count to the input's bucket, recomputes
// the accepted range and clamps input to it.
// It panics with ErrHistogramUnderflow if the histogram is out of step with
// the window.
func (h *HistAntiJitter[T]) Process(input T) T {
	last := h.Bucket(h.window.Evicted())
	cur := h.Bucket(input)
	if h.hist[last] <= 0 {
		panic(fmt.Errorf("%w: bucket %d", ErrHistogramUnderflow, last))
	}
	h.hist[last]--
	h.hist[cur]++

	h.low, h.high = h.bounds()
	switch {
	case cur < h.low:
		h.out = h.Value(h.low)
	case cur > h.high:
		h.out = h.Value(h.high + 1)
	default:
		h.out = input
	}
	return h.out
}

// bounds walks inwards from both ends until more than margin samples have
// been passed. The bucket that crosses the margin is the accepted limit.
func (h *HistAntiJitter[T]) bounds() (low, high int) {
	last := len(h.hist) - 1

	acc := 0
	for low = 0; low < last; low++ {
		acc += h.hist[low]
		if acc > h.margin {
			break
		}
	}

	acc = 0
	for high = last; high > 0; high-- {
		acc += h.hist[high]
		if acc > h.margin {
			break
		}
	}
	return low, high
}
